package dto

type ClientCardDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsVip      bool   `json:"is_vip"`
	IsBirthday bool   `json:"is_birthday"`
	SkinType   string `json:"skin_type"`
	LastVisit  string `json:"last_visit"`
}
