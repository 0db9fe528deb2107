package joblist

import "slices"

// Roles allowed on the manage-jobs screen
const (
	RoleEmployer  = "Employer"
	RoleRecruiter = "Recruiter"
)

// LoaderData is the page-chrome gate state. It is a value: every change
// produces a new LoaderData and earlier copies never observe it.
type LoaderData struct {
	isLoading    bool
	allowedUsers []string
}

// IsLoading reports whether the chrome should still show its loader
func (l LoaderData) IsLoading() bool {
	return l.isLoading
}

// AllowedUsers returns a copy of the permitted roles
func (l LoaderData) AllowedUsers() []string {
	return slices.Clone(l.allowedUsers)
}

// Allows reports whether role may view the screen
func (l LoaderData) Allows(role string) bool {
	return slices.Contains(l.allowedUsers, role)
}

// WithLoading returns a copy with the loading flag set to v
func (l LoaderData) WithLoading(v bool) LoaderData {
	return LoaderData{isLoading: v, allowedUsers: slices.Clone(l.allowedUsers)}
}

// LoaderBuilder assembles LoaderData before first render
type LoaderBuilder struct {
	users []string
}

func NewLoaderBuilder() *LoaderBuilder {
	return &LoaderBuilder{}
}

// Allow adds roles, skipping duplicates
func (b *LoaderBuilder) Allow(roles ...string) *LoaderBuilder {
	for _, r := range roles {
		if r != "" && !slices.Contains(b.users, r) {
			b.users = append(b.users, r)
		}
	}
	return b
}

// Build returns LoaderData in the loading state
func (b *LoaderBuilder) Build() LoaderData {
	return LoaderData{isLoading: true, allowedUsers: slices.Clone(b.users)}
}

// DefaultLoader permits employers and recruiters
func DefaultLoader() LoaderData {
	return NewLoaderBuilder().Allow(RoleEmployer, RoleRecruiter).Build()
}
