package redis

import "github.com/PriyankaYambem/cloud-manager/internal/model"

// Key patterns for stored entities
const (
	userKeyPrefix     = "user:"
	usernameKeyPrefix = "username:"
	userIDSetKey      = "users"
)

func userKey(id model.UserID) string {
	return userKeyPrefix + string(id)
}

func usernameKey(username string) string {
	return usernameKeyPrefix + username
}
