package client

import "github.com/dmitrijs2005/leaguefeed/internal/client/models"

type loginResponse struct {
	APIKey string `json:"api_key"`
}

type userDTO struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Avatar   string     `json:"avatar"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Website  string     `json:"website"`
	Address  addressDTO `json:"address"`
	Company  companyDTO `json:"company"`
}

type addressDTO struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     geoDTO `json:"geo"`
}

type geoDTO struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type companyDTO struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

type postDTO struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func userFromDTO(d userDTO) models.User {
	return models.User{
		ID:       d.ID,
		Name:     d.Name,
		Username: d.Username,
		Avatar:   d.Avatar,
		Email:    d.Email,
		Phone:    d.Phone,
		Website:  d.Website,
		Address: models.Address{
			Street:  d.Address.Street,
			Suite:   d.Address.Suite,
			City:    d.Address.City,
			Zipcode: d.Address.Zipcode,
			Geo:     models.Geo{Lat: d.Address.Geo.Lat, Lng: d.Address.Geo.Lng},
		},
		Company: models.Company{
			Name:        d.Company.Name,
			CatchPhrase: d.Company.CatchPhrase,
			BS:          d.Company.BS,
		},
	}
}

func postFromDTO(d postDTO) models.Post {
	return models.Post{ID: d.ID, UserID: d.UserID, Title: d.Title, Body: d.Body}
}

func usersFromDTO(ds []userDTO) []models.User {
	out := make([]models.User, 0, len(ds))
	for _, d := range ds {
		out = append(out, userFromDTO(d))
	}
	return out
}

func postsFromDTO(ds []postDTO) []models.Post {
	out := make([]models.Post, 0, len(ds))
	for _, d := range ds {
		out = append(out, postFromDTO(d))
	}
	return out
}
