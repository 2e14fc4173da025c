package domain

type ID int64

// User is a store record. PasswordHash must never leave the service; use
// Profile for anything written to a client.
type User struct {
	ID                ID
	Username          string
	Email             string
	PasswordHash      string
	EnrolledCourseIDs []int64
}

// Profile is the public projection of a User.
type Profile struct {
	ID              ID      `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	EnrolledCourses []int64 `json:"enrolled_courses"`
}

func (u User) Profile() Profile {
	enrolled := make([]int64, len(u.EnrolledCourseIDs))
	copy(enrolled, u.EnrolledCourseIDs)
	return Profile{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		EnrolledCourses: enrolled,
	}
}
