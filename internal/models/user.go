package models

type User struct {
	BaseModel
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Name         string     `gorm:"not null" json:"name"`
	Phone        string     `gorm:"uniqueIndex:idx_users_phone;not null" json:"phone"`
	Email        *string    `gorm:"uniqueIndex:idx_users_email" json:"email"`
	PasswordHash *string    `json:"-"`
	Address      string     `json:"address"`
	Aadhar       string     `json:"aadhar,omitempty"`
	VoterID      string     `json:"voter_id,omitempty"`
	Pan          string     `json:"pan,omitempty"`
	PhotoPath    *string    `json:"photo_path,omitempty"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	ParentProfile   *ParentProfile   `gorm:"foreignKey:UserID" json:"parent_profile,omitempty"`
	DaughterProfile *DaughterProfile `gorm:"foreignKey:UserID" json:"daughter_profile,omitempty"`
	VendorProfile   *VendorProfile   `gorm:"foreignKey:UserID" json:"vendor_profile,omitempty"`
}

// PublicProfile is the user projection returned by login and admin reads.
// It never carries the password hash.
type PublicProfile struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Role   UserRole   `json:"role"`
	Email  *string    `json:"email"`
	Phone  string     `json:"phone"`
	Status UserStatus `json:"status"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:     u.ID,
		Name:   u.Name,
		Role:   u.Role,
		Email:  u.Email,
		Phone:  u.Phone,
		Status: u.Status,
	}
}
