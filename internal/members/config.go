package members

import "time"

type Config struct {
	SecretKey      []byte
	Issuer         string
	AccessTokenExp time.Duration
}
