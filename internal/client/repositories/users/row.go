package users

import "github.com/dmitrijs2005/leaguefeed/internal/client/models"

// Row is the persisted shape of a user.
type Row struct {
	ID       int64
	Name     string
	UserName string
	Avatar   string
	Email    string
	Phone    string
	Website  string
	City     string
	Suite    string
	ZipCode  string
}

func toRow(u models.User) Row {
	return Row{
		ID:       u.ID,
		Name:     u.Name,
		UserName: u.Username,
		Avatar:   u.Avatar,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
		City:     u.Address.City,
		Suite:    u.Address.Suite,
		ZipCode:  u.Address.Zipcode,
	}
}

// fromRow rebuilds a user from the cache. Street, geo and company were never
// stored, so they stay zero and the result is marked Partial.
func fromRow(r Row) models.User {
	return models.User{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.UserName,
		Avatar:   r.Avatar,
		Email:    r.Email,
		Phone:    r.Phone,
		Website:  r.Website,
		Address: models.Address{
			Suite:   r.Suite,
			City:    r.City,
			Zipcode: r.ZipCode,
		},
		Partial: true,
	}
}
