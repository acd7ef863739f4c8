package service

// Collection names in the document store. The system this backend replaces
// wrote food entries to "foods" but read single entries back from "food_tb";
// that split was a latent defect and is not reproduced here.
const (
	FoodsCollection = "foods"
	UsersCollection = "users"
)

// ImageUpload is a decoded image file accepted at the HTTP boundary. Type
// and size validation happen there, before any store is touched.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
