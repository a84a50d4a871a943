package deploy

import (
	"strconv"

	"github.com/docserve/dsctl/pkg/config"
)

// Environment variable names understood by the onlyoffice/documentserver image.
const (
	EnvJWTEnabled          = "JWT_ENABLED"
	EnvJWTSecret           = "JWT_SECRET"
	EnvJWTHeader           = "JWT_HEADER"
	EnvJWTOutboxHeader     = "JWT_OUTBOX_HEADER"
	EnvJWTInBody           = "JWT_IN_BODY"
	EnvAllowPrivateIP      = "ALLOW_PRIVATE_IP_ADDRESS"
	EnvAllowMetaIP         = "ALLOW_META_IP_ADDRESS"
	EnvUnauthorizedStorage = "USE_UNAUTHORIZED_STORAGE"
	EnvWOPIEnabled         = "WOPI_ENABLED"
)

// BuildEnv maps the resolved document server config onto the container's
// environment: exactly nine KEY=value entries, five derived from cfg and four
// fixed. Booleans become lowercase "true"/"false" tokens since the consumer
// is the runtime's -e flag, not a typed API.
func BuildEnv(cfg config.DocumentServer) []string {
	return []string{
		EnvJWTEnabled + "=" + strconv.FormatBool(cfg.JWTEnabled),
		EnvJWTSecret + "=" + cfg.Secret,
		EnvJWTHeader + "=Authorization",
		EnvJWTOutboxHeader + "=Authorization",
		EnvJWTInBody + "=false",
		EnvAllowPrivateIP + "=" + strconv.FormatBool(cfg.AllowPrivateIP),
		EnvAllowMetaIP + "=" + strconv.FormatBool(cfg.AllowMetaIP),
		EnvUnauthorizedStorage + "=" + strconv.FormatBool(cfg.UseUnauthorizedStorage),
		EnvWOPIEnabled + "=false",
	}
}
