package client

import "fmt"

// Paths are relative to the configured base URL.
const (
	pathToken     = "authen/jwt/create"
	pathRegister  = "api/register/"
	pathProfiles  = "api/profile/"
	pathMyProfile = "api/myprofile/"
	pathPosts     = "api/post/"
	pathComments  = "api/comment/"
)

func profilePath(id int64) string { return fmt.Sprintf("%s%d/", pathProfiles, id) }

func postPath(id int64) string { return fmt.Sprintf("%s%d/", pathPosts, id) }
