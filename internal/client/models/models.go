// Package models defines the records exchanged with the SNS backend and the
// inputs accepted by client operations.
package models

// Profile is a user's public profile. UserProfile is the owning user id and
// the key every other record joins on; ID is only used for updates.
type Profile struct {
	ID          int64  `json:"id"`
	NickName    string `json:"nickName"`
	UserProfile int64  `json:"userProfile"`
	CreatedOn   string `json:"created_on"`
	// Img is an absolute image URL, empty when the profile has no picture.
	Img string `json:"img"`
}

// Post is a published picture. Liked holds the ids of users who liked it;
// it is a set stored in order and never contains duplicates.
type Post struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	UserPost  int64   `json:"userPost"`
	CreatedOn string  `json:"created_on"`
	Img       string  `json:"img"`
	Liked     []int64 `json:"liked"`
}

type Comment struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	UserComment int64  `json:"userComment"`
	Post        int64  `json:"post"`
}

// Credentials are exchanged for a session token and used to register.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// TokenPair is the credential exchange response. Only Access is used.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Account is the record returned by registration.
type Account struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Image is a picture selected for upload.
type Image struct {
	Name string
	Data []byte
}

// ProfileUpdate carries a profile edit. Img is optional; without it only
// the nickname is sent.
type ProfileUpdate struct {
	ID       int64  `validate:"required"`
	NickName string `validate:"required"`
	Img      *Image
}

// NewPost is the input of post creation. A title and a picture are both
// required before submission.
type NewPost struct {
	Title string `validate:"required"`
	Img   *Image `validate:"required"`
}

type NewComment struct {
	Text string `json:"text" validate:"required"`
	Post int64  `json:"post" validate:"required"`
}

// LikeToggle asks to flip ActingUser's like on post ID. CurrentLiked is the
// liked list as currently held in state; Title is needed when the like being
// removed is the last one.
type LikeToggle struct {
	ID           int64
	Title        string
	CurrentLiked []int64
	ActingUser   int64
}
