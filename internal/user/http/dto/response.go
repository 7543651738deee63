package dto

import (
	"github.com/allisson/users/internal/user/domain"
)

// UserResponse is the projected external representation of a user. Only the
// requested fields are present and the password attribute can never appear.
type UserResponse map[string]any

// ToUserResponse projects a domain user onto the given field set. Optional
// attributes are omitted when unset so responses mirror what was stored.
func ToUserResponse(user *domain.User, fields domain.Fields) UserResponse {
	response := make(UserResponse, len(fields))

	for _, field := range fields {
		switch field {
		case "id":
			response["id"] = user.ID
		case "email":
			response["email"] = user.Email
		case "username":
			response["username"] = user.Username
		case "phone":
			if user.Phone != "" {
				response["phone"] = user.Phone
			}
		case "cell":
			if user.Cell != "" {
				response["cell"] = user.Cell
			}
		case "dob":
			if user.DOB != nil {
				response["dob"] = Date(*user.DOB)
			}
		case "pps":
			if user.PPS != "" {
				response["pps"] = user.PPS
			}
		case "gender":
			if user.Gender != "" {
				response["gender"] = user.Gender
			}
		case "name":
			if user.Name != nil {
				response["name"] = user.Name
			}
		case "picture":
			if user.Picture != nil {
				response["picture"] = user.Picture
			}
		case "location":
			if user.Location != nil {
				response["location"] = user.Location
			}
		case "created_at":
			response["created_at"] = user.CreatedAt
		case "updated_at":
			response["updated_at"] = user.UpdatedAt
		}
	}

	return response
}

// ListUsersResponse represents a paginated list of projected users.
// NextPage, when present, is an absolute URL for the following page window.
type ListUsersResponse struct {
	Items    []UserResponse `json:"items"`
	NextPage string         `json:"nextPage,omitempty"`
}

// MapUsersToListResponse converts a page of domain users to a list response.
// The nextPage URL is rendered by the HTTP boundary, which knows the request path.
func MapUsersToListResponse(users []*domain.User, fields domain.Fields) ListUsersResponse {
	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserResponse(user, fields))
	}

	return ListUsersResponse{
		Items: items,
	}
}
