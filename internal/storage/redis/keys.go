package redis

const keyPrefix = "chronosync:"

func credentialKey(username string) string {
	return keyPrefix + "credential:" + username
}
