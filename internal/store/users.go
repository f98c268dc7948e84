package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ifclabs/ifcsuite/internal/security"
)

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// User is one users.json record. Passwords are stored in plaintext;
// this tool runs on a trusted internal host and the persisted format
// predates it.
type User struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserStore is the read-only repository over users.json. The file is
// only written once, when Seed creates the default accounts.
type UserStore struct {
	path string
}

var defaultUsers = map[string]User{
	"manager":   {Password: "admin123", Role: RoleManager},
	"employee1": {Password: "emp123", Role: RoleEmployee},
	"employee2": {Password: "emp456", Role: RoleEmployee},
}

// NewUserStore opens the credential file, seeding the default accounts
// on first run.
func NewUserStore(path string) (*UserStore, error) {
	if err := ensureFile(path, defaultUsers); err != nil {
		return nil, err
	}
	return &UserStore{path: path}, nil
}

func (s *UserStore) All() (map[string]User, error) {
	var users map[string]User
	if err := readJSONFile(s.path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Authenticate checks an exact credential match and returns the user's
// role. Any mismatch, including an unknown username, yields ErrAuthFailure.
func (s *UserStore) Authenticate(username, password string) (Role, error) {
	users, err := s.All()
	if err != nil {
		return "", err
	}
	user, ok := users[strings.TrimSpace(username)]
	if !ok {
		return "", ErrAuthFailure
	}
	if !security.SecureCompare(password, user.Password) {
		return "", ErrAuthFailure
	}
	return user.Role, nil
}

// Employees returns the usernames with the employee role, sorted.
func (s *UserStore) Employees() ([]string, error) {
	users, err := s.All()
	if err != nil {
		return nil, err
	}
	names := []string{}
	for name, user := range users {
		if user.Role == RoleEmployee {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Lookup returns a single user record.
func (s *UserStore) Lookup(username string) (User, error) {
	users, err := s.All()
	if err != nil {
		return User{}, err
	}
	user, ok := users[username]
	if !ok {
		return User{}, fmt.Errorf("%w: user %s", ErrNotFound, username)
	}
	return user, nil
}
