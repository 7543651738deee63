package repository

import (
	"database/sql"

	"github.com/allisson/users/internal/user/domain"
)

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// userRow holds the flattened nullable column values of a user record.
type userRow struct {
	dob            sql.NullTime
	nameTitle      string
	nameFirst      string
	nameLast       string
	pictureSmall   string
	pictureMedium  string
	pictureLarge   string
	locationStreet string
	locationCity   string
	locationState  string
	locationZip    int64
}

// flattenUser maps the optional sub-objects of a user onto flat column values.
func flattenUser(user *domain.User) userRow {
	var row userRow

	if user.DOB != nil {
		row.dob = sql.NullTime{Time: *user.DOB, Valid: true}
	}
	if user.Name != nil {
		row.nameTitle = user.Name.Title
		row.nameFirst = user.Name.First
		row.nameLast = user.Name.Last
	}
	if user.Picture != nil {
		row.pictureSmall = user.Picture.Small
		row.pictureMedium = user.Picture.Medium
		row.pictureLarge = user.Picture.Large
	}
	if user.Location != nil {
		row.locationStreet = user.Location.Street
		row.locationCity = user.Location.City
		row.locationState = user.Location.State
		row.locationZip = user.Location.Zip
	}

	return row
}

// scanUser reads one user record in userColumns order and rebuilds the
// optional sub-objects. A sub-object is considered present when any of its
// members holds a value; location presence follows its required street member.
// This canonicalizes storage: a name or picture written with every member
// empty reads back as absent, not as an empty object.
func scanUser(s scanner) (*domain.User, error) {
	var user domain.User
	var row userRow

	err := s.Scan(
		&user.ID, &user.Email, &user.Username, &user.Password,
		&user.Phone, &user.Cell, &row.dob, &user.PPS, &user.Gender,
		&row.nameTitle, &row.nameFirst, &row.nameLast,
		&row.pictureSmall, &row.pictureMedium, &row.pictureLarge,
		&row.locationStreet, &row.locationCity, &row.locationState, &row.locationZip,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if row.dob.Valid {
		dob := row.dob.Time
		user.DOB = &dob
	}
	if row.nameTitle != "" || row.nameFirst != "" || row.nameLast != "" {
		user.Name = &domain.Name{
			Title: row.nameTitle,
			First: row.nameFirst,
			Last:  row.nameLast,
		}
	}
	if row.pictureSmall != "" || row.pictureMedium != "" || row.pictureLarge != "" {
		user.Picture = &domain.Picture{
			Small:  row.pictureSmall,
			Medium: row.pictureMedium,
			Large:  row.pictureLarge,
		}
	}
	if row.locationStreet != "" {
		user.Location = &domain.Location{
			Street: row.locationStreet,
			City:   row.locationCity,
			State:  row.locationState,
			Zip:    row.locationZip,
		}
	}

	return &user, nil
}
