package model

// User is a channel owner / viewer profile
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Handle             string `json:"handle,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Avatar             string `json:"avatar"`
	BannerURL          string `json:"bannerUrl,omitempty"`
	Description        string `json:"description,omitempty"`
	IsCreativeDirector bool   `json:"isCreativeDirector"`
}

// UserPatch carries profile edits. Nil fields are left untouched.
type UserPatch struct {
	Name        *string `json:"name"`
	Handle      *string `json:"handle"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Avatar      *string `json:"avatar"`
	BannerURL   *string `json:"bannerUrl"`
	Description *string `json:"description"`
}

// Apply returns a copy of u with the non-nil patch fields set
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Handle != nil {
		u.Handle = *p.Handle
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.BannerURL != nil {
		u.BannerURL = *p.BannerURL
	}
	if p.Description != nil {
		u.Description = *p.Description
	}
	return u
}
