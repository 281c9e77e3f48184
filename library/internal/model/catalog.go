package model

type CreateAuthorRequest struct {
	FullName    string `json:"full_name" validate:"required,max=480"`
	BirthYear   *int   `json:"birth_year" validate:"omitempty,gte=-3000,lte=3000"`
	Description string `json:"description"`
}

type CreatePublisherRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address"`
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required,max=380"`
	AuthorID int64  `json:"author" validate:"required"`
}

type CreateEditionRequest struct {
	PublisherID     int64  `json:"publisher" validate:"required"`
	PublicationDate Date   `json:"publication_date" validate:"required"`
	ISBN            string `json:"isbn" validate:"required,max=13"`
}

type CreateCopyRequest struct {
	Identifier string     `json:"identifier" validate:"required,max=6"`
	Condition  *Condition `json:"condition" validate:"omitempty,oneof='Very Good' Good Acceptable Poor"`
}

type CreateVisitorRequest struct {
	Identifier  string `json:"identifier" validate:"required,max=6"`
	FullName    string `json:"full_name" validate:"required,max=320"`
	Email       string `json:"email" validate:"required,email,max=320"`
	PhoneNumber string `json:"phone_number" validate:"max=15"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateVisitorRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Update requests carry only the fields present in the body; nil leaves a column as is.

type UpdateAuthorRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=1,max=480"`
	BirthYear   *int    `json:"birth_year" validate:"omitempty,gte=-3000,lte=3000"`
	Description *string `json:"description"`
}

type UpdatePublisherRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address *string `json:"address"`
}

type UpdateBookRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=380"`
	AuthorID *int64  `json:"author" validate:"omitempty,gte=1"`
}

type UpdateEditionRequest struct {
	PublisherID     *int64  `json:"publisher" validate:"omitempty,gte=1"`
	PublicationDate *Date   `json:"publication_date"`
	ISBN            *string `json:"isbn" validate:"omitempty,min=1,max=13"`
}
