package models

const DefaultImagePath = "/static/profile_pics/default.svg"

type User struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Username  string  `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email     string  `json:"email" gorm:"size:200;uniqueIndex;not null"`
	ImageFile *string `json:"image_file" gorm:"size:200"`

	// Relationship
	Posts []Post `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts,omitempty"`
}

// ImagePath is the public location of the user's picture. urlFor maps a
// stored image file name to its URL.
func (u *User) ImagePath(urlFor func(string) string) string {
	if u.ImageFile == nil || *u.ImageFile == "" || urlFor == nil {
		return DefaultImagePath
	}
	return urlFor(*u.ImageFile)
}

type CreateUserParams struct {
	Username string
	Email    string
}

// UserPatch lists the fields supplied by a partial update. Nil means "not supplied".
type UserPatch struct {
	Username  *string
	Email     *string
	ImageFile *string
}

// FieldChange is a new value for a unique column.
type FieldChange struct {
	Column string
	Value  string
}

// UniqueChanges returns, username first, the unique columns whose supplied
// value differs from u. ImageFile is not unique and never appears here.
func (p UserPatch) UniqueChanges(u *User) []FieldChange {
	var changes []FieldChange
	if p.Username != nil && *p.Username != u.Username {
		changes = append(changes, FieldChange{Column: "username", Value: *p.Username})
	}
	if p.Email != nil && *p.Email != u.Email {
		changes = append(changes, FieldChange{Column: "email", Value: *p.Email})
	}
	return changes
}

// Columns returns the column updates for the supplied fields.
func (p UserPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if p.Username != nil {
		cols["username"] = *p.Username
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.ImageFile != nil {
		cols["image_file"] = *p.ImageFile
	}
	return cols
}

// Apply merges the supplied fields into u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ImageFile != nil {
		file := *p.ImageFile
		u.ImageFile = &file
	}
}
