package internal

import (
	"fmt"
	"group-chat/domain"
	"group-chat/errors"
	"net/netip"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the startup parameters of a peer.
// Defaults match the historical launcher: user Matteo on group 230.19.6.5:19065.
type Config struct {
	Username       string `env:"CHAT_USERNAME,default=Matteo" validate:"required,max=64"`
	GroupAddress   string `env:"CHAT_GROUP_ADDRESS,default=230.19.6.5" validate:"required,ipv4"`
	GroupPort      int    `env:"CHAT_GROUP_PORT,default=19065" validate:"min=1,max=65535"`
	Logging        bool   `env:"CHAT_LOGGING,default=false"`
	LogLevel       string `env:"LOG_LEVEL,default=DEBUG" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	UnicastAddress string `env:"CHAT_UNICAST_ADDRESS,default=0.0.0.0:0" validate:"required"`
	MulticastTTL   int    `env:"CHAT_MULTICAST_TTL,default=1" validate:"min=0,max=255"`
	Loopback       bool   `env:"CHAT_MULTICAST_LOOPBACK,default=true"`
	Colours        bool   `env:"CHAT_COLOURS,default=true"`
	// CHAT_DEBUG_ADDRESS serves the inspect page when set, e.g. 127.0.0.1:8090
	DebugAddress string `env:"CHAT_DEBUG_ADDRESS"`
}

// Load reads the configuration from an environment set, e.g. env.EnvironToEnvSet(os.Environ()).
func Load(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return config, nil
}

// ApplyArgs overrides the configuration with the launcher arguments
// <username> <groupAddress> <groupPort> <logging>. No arguments keeps it as is.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: usage: <username> <groupAddress> <groupPort> <logging>", errors.ErrInvalidArgument)
	}
	port, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: group port %q is not a number", errors.ErrInvalidArgument, args[2])
	}
	logging, err := strconv.ParseBool(args[3])
	if err != nil {
		return fmt.Errorf("%w: logging %q is not a boolean", errors.ErrInvalidArgument, args[3])
	}
	c.Username, c.GroupAddress, c.GroupPort, c.Logging = args[0], args[1], port, logging
	return nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	if err := domain.ValidateUsername(c.Username); err != nil {
		return err
	}
	if addr, _ := netip.ParseAddr(c.GroupAddress); !addr.IsMulticast() {
		return fmt.Errorf("%w: %s", errors.ErrInvalidMulticast, c.GroupAddress)
	}
	if _, err := netip.ParseAddrPort(c.UnicastAddress); err != nil {
		return fmt.Errorf("%w: unicast address %q: %v", errors.ErrInvalidArgument, c.UnicastAddress, err)
	}
	if c.DebugAddress != "" {
		if _, err := netip.ParseAddrPort(c.DebugAddress); err != nil {
			return fmt.Errorf("%w: debug address %q: %v", errors.ErrInvalidArgument, c.DebugAddress, err)
		}
	}
	return nil
}
