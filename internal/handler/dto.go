package handler

import "time"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Portrait  string `json:"portrait"`
	Signature string `json:"signature"`
}

type updateUserRequest struct {
	Password    string  `json:"password"`
	Name        *string `json:"name"`
	NewPassword *string `json:"newPassword"`
	Portrait    *string `json:"portrait"`
	Signature   *string `json:"signature"`
}

type createArtworkRequest struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Creator       string    `json:"creator"`
	Password      string    `json:"password"`
	KeyPhoto      string    `json:"keyPhoto"`
	BelongingRepo string    `json:"belongingRepo"`
	Timestamp     time.Time `json:"timestamp"`
}

type updateArtworkRequest struct {
	Creator     string  `json:"creator"`
	Password    string  `json:"password"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	KeyPhoto    *string `json:"keyPhoto"`
}

type removeArtworkRequest struct {
	Creator  string `json:"creator"`
	Password string `json:"password"`
}

type createRepoRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Starter     string    `json:"starter"`
	Password    string    `json:"password"`
	KeyArtwork  string    `json:"keyArtwork"`
	Timestamp   time.Time `json:"timestamp"`
}

type updateRepoRequest struct {
	Starter     string  `json:"starter"`
	Password    string  `json:"password"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type removeRepoRequest struct {
	Starter  string `json:"starter"`
	Password string `json:"password"`
}

type createLectureRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	Password    string    `json:"password"`
	KeyPhoto    string    `json:"keyPhoto"`
	Steps       string    `json:"steps"`
	Timestamp   time.Time `json:"timestamp"`
}

type updateLectureRequest struct {
	Creator     string  `json:"creator"`
	Password    string  `json:"password"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Steps       *string `json:"steps"`
	KeyPhoto    *string `json:"keyPhoto"`
}

type removeLectureRequest struct {
	Creator  string `json:"creator"`
	Password string `json:"password"`
}

type starRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type followRequest struct {
	Origin   string `json:"origin"`
	Password string `json:"password"`
}
