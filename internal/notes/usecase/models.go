package usecase

type CreateInput struct {
	Title string
	Body  string
}

type UpdateInput struct {
	ID      int64
	Version int64
	Title   string
	Body    string
}
