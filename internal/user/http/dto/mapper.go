package dto

import (
	"time"

	"github.com/allisson/users/internal/user/domain"
	"github.com/allisson/users/internal/user/usecase"
)

// ToCreateUserInput converts a CreateUserRequest DTO to a use case input.
func ToCreateUserInput(req CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Cell:     req.Cell,
		DOB:      toDOB(req.DOB),
		PPS:      req.PPS,
		Gender:   req.Gender,
		Name:     toName(req.Name),
		Picture:  toPicture(req.Picture),
		Location: toLocation(req.Location),
	}
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to a use case input,
// preserving the supplied/absent distinction of every field.
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
		Cell:     req.Cell,
		DOB:      toDOB(req.DOB),
		PPS:      req.PPS,
		Gender:   req.Gender,
		Name:     toName(req.Name),
		Picture:  toPicture(req.Picture),
		Location: toLocation(req.Location),
	}
}

func toDOB(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func toName(p *NamePayload) *domain.Name {
	if p == nil {
		return nil
	}
	return &domain.Name{
		Title: p.Title,
		First: p.First,
		Last:  p.Last,
	}
}

func toPicture(p *PicturePayload) *domain.Picture {
	if p == nil {
		return nil
	}
	return &domain.Picture{
		Small:  p.Small,
		Medium: p.Medium,
		Large:  p.Large,
	}
}

func toLocation(p *LocationPayload) *domain.Location {
	if p == nil {
		return nil
	}

	location := &domain.Location{
		Street: p.Street,
		City:   p.City,
		State:  p.State,
	}
	if p.Zip != nil {
		location.Zip = *p.Zip
	}
	return location
}
