package config

import (
	"github.com/spf13/viper"
)

// Key is a configuration key path used with Viper.
type Key string

// Document server security posture.
const (
	OnlyOfficeSecret                 Key = "onlyoffice.secret"
	OnlyOfficeAllowPrivateIP         Key = "onlyoffice.allow_private_ip"
	OnlyOfficeAllowMetaIP            Key = "onlyoffice.allow_meta_ip"
	OnlyOfficeUseUnauthorizedStorage Key = "onlyoffice.use_unauthorized_storage"
	OnlyOfficeJWTEnabled             Key = "onlyoffice.jwt_enabled"
)

// Container placement.
const (
	ContainerName     Key = "container.name"
	ContainerImage    Key = "container.image"
	ContainerHost     Key = "container.host"
	ContainerHostPort Key = "container.host_port"
)

// DefaultSecret is the placeholder signing key used when no config file is
// present. It is not suitable for anything beyond a local trial deployment.
const DefaultSecret = "wIUxuAv0mXxom895nEGPpHOPKG3Bw3hm"

var defaultValues = map[Key]any{
	OnlyOfficeSecret:                 DefaultSecret,
	OnlyOfficeAllowPrivateIP:         true,
	OnlyOfficeAllowMetaIP:            true,
	OnlyOfficeUseUnauthorizedStorage: true,
	OnlyOfficeJWTEnabled:             true,

	ContainerName:     "onlyoffice-documentserver",
	ContainerImage:    "onlyoffice/documentserver:latest",
	ContainerHost:     "localhost",
	ContainerHostPort: uint(8080),
}

// SetDefaults sets all viper defaults for configuration.
// Called before viper.Unmarshal() to ensure defaults are available.
func SetDefaults() {
	for k, v := range defaultValues {
		viper.SetDefault(string(k), v)
	}
}

// RequiredKeys are the dot-path keys `dsctl config validate` insists on when
// a config file is present.
var RequiredKeys = []Key{
	OnlyOfficeSecret,
	OnlyOfficeAllowPrivateIP,
	OnlyOfficeAllowMetaIP,
	OnlyOfficeUseUnauthorizedStorage,
	OnlyOfficeJWTEnabled,
}
