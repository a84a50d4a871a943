package config

import (
	"fmt"
)

// DocumentServer holds the security and network-access posture of the
// OnlyOffice document server. These five values are injected into the
// container as environment variables on deploy.
type DocumentServer struct {
	Secret                 string `mapstructure:"secret" json:"secret" validate:"required"`
	AllowPrivateIP         bool   `mapstructure:"allow_private_ip" json:"allow_private_ip"`
	AllowMetaIP            bool   `mapstructure:"allow_meta_ip" json:"allow_meta_ip"`
	UseUnauthorizedStorage bool   `mapstructure:"use_unauthorized_storage" json:"use_unauthorized_storage"`
	JWTEnabled             bool   `mapstructure:"jwt_enabled" json:"jwt_enabled"`
}

func (d DocumentServer) Validate() error {
	return validateConfig(d)
}

// Container describes where and how the document server container runs.
type Container struct {
	Name     string `mapstructure:"name" json:"name" validate:"required"`
	Image    string `mapstructure:"image" json:"image" validate:"required"`
	Host     string `mapstructure:"host" json:"host" validate:"required"`
	HostPort uint   `mapstructure:"host_port" json:"host_port" validate:"required,min=1,max=65535"`
}

func (c Container) Validate() error {
	return validateConfig(c)
}

// ServerURL is the address clients use to reach the document server.
func (c Container) ServerURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.HostPort)
}

// HealthcheckURL is the document server's liveness endpoint.
func (c Container) HealthcheckURL() string {
	return c.ServerURL() + "/healthcheck"
}

// Full is the complete dsctl configuration.
type Full struct {
	OnlyOffice DocumentServer `mapstructure:"onlyoffice" json:"onlyoffice"`
	Container  Container      `mapstructure:"container" json:"container"`
}

func (f Full) Validate() error {
	if err := f.OnlyOffice.Validate(); err != nil {
		return fmt.Errorf("onlyoffice: %w", err)
	}
	if err := f.Container.Validate(); err != nil {
		return fmt.Errorf("container: %w", err)
	}
	return nil
}
