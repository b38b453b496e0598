package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"elevsim/elevator"
	"elevsim/elevio"
	"elevsim/requests"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var FEED_PORT string = ":14272"

const (
	DEFAULT_CONFIG_PATH = "elevsim.yaml"
	DEFAULT_ENV_PATH    = ".env"
	DEFAULT_TICKS       = 15
)

var ErrInvalidScenario = errors.New("invalid scenario")

// CallSpec is one scenario row. Calls with Tick 0 are submitted before
// the first tick, calls with Tick k right after the k-th tick.
type CallSpec struct {
	Tick  int    `yaml:"tick"`
	Kind  string `yaml:"kind"`
	Floor int    `yaml:"floor"`
	Dirn  string `yaml:"dirn,omitempty"`
}

func (c CallSpec) Request() (requests.Request, error) {
	kind, ok := elevio.ParseCallKind(c.Kind)
	if !ok {
		return requests.Request{}, errors.Wrapf(ErrInvalidScenario, "unknown call kind %q", c.Kind)
	}
	if kind == elevio.CK_Car {
		return requests.NewCarCall(c.Floor)
	}
	dirn, ok := elevio.ParseDirn(c.Dirn)
	if !ok {
		return requests.Request{}, errors.Wrapf(ErrInvalidScenario, "unknown direction %q", c.Dirn)
	}
	return requests.NewHallCall(c.Floor, dirn)
}

type Feed struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

type Settings struct {
	Elevator elevator.Config `yaml:"elevator"`
	Ticks    int             `yaml:"ticks"`
	LogLevel string          `yaml:"log_level"`
	Feed     Feed            `yaml:"feed"`
	Scenario []CallSpec      `yaml:"scenario"`
}

// Default reproduces the stock demo: ten floors, three calls, fifteen ticks.
func Default() Settings {
	return Settings{
		Elevator: elevator.DefaultConfig(),
		Ticks:    DEFAULT_TICKS,
		LogLevel: "info",
		Feed: Feed{
			Enabled: false,
			Address: "127.0.0.1" + FEED_PORT,
		},
		Scenario: []CallSpec{
			{Tick: 0, Kind: "hall", Floor: 3, Dirn: "up"},
			{Tick: 0, Kind: "car", Floor: 7},
			{Tick: 0, Kind: "hall", Floor: 2, Dirn: "down"},
		},
	}
}

// Load reads settings from a YAML file. Fields missing from the file keep
// their defaults. A missing file yields Default().
func Load(path string) (Settings, error) {
	s := Default()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrapf(err, "open settings %s", path)
	}
	defer file.Close()

	if err := Decode(file, &s); err != nil {
		return s, errors.Wrapf(err, "decode settings %s", path)
	}
	return s, nil
}

// Decode reads YAML settings from r on top of whatever s already holds.
func Decode(r io.Reader, s *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ApplyEnv overrides settings with ELEVSIM_* keys from a dotenv file and
// then from the process environment. A missing file is not an error.
func (s *Settings) ApplyEnv(path string) error {
	env, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "read env file %s", path)
	}
	if env == nil {
		env = map[string]string{}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return s.applyEnvMap(env)
}

var envKeys = []string{
	"ELEVSIM_MIN_FLOOR",
	"ELEVSIM_MAX_FLOOR",
	"ELEVSIM_DOOR_STAGE_TICKS",
	"ELEVSIM_DOOR_OPEN_HOLD_TICKS",
	"ELEVSIM_TICKS",
	"ELEVSIM_LOG_LEVEL",
	"ELEVSIM_FEED_ADDRESS",
}

func (s *Settings) applyEnvMap(env map[string]string) error {
	ints := map[string]*int{
		"ELEVSIM_MIN_FLOOR":            &s.Elevator.MinFloor,
		"ELEVSIM_MAX_FLOOR":            &s.Elevator.MaxFloor,
		"ELEVSIM_DOOR_STAGE_TICKS":     &s.Elevator.DoorStageTicks,
		"ELEVSIM_DOOR_OPEN_HOLD_TICKS": &s.Elevator.DoorOpenHoldTicks,
		"ELEVSIM_TICKS":                &s.Ticks,
	}
	for key, dst := range ints {
		raw, ok := env[key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		*dst = v
	}
	if v, ok := env["ELEVSIM_LOG_LEVEL"]; ok {
		s.LogLevel = v
	}
	if v, ok := env["ELEVSIM_FEED_ADDRESS"]; ok && v != "" {
		s.Feed.Address = v
		s.Feed.Enabled = true
	}
	return nil
}

func (s Settings) Validate() error {
	if s.Ticks < 0 {
		return errors.Errorf("ticks must not be negative, got %d", s.Ticks)
	}
	if err := s.Elevator.Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	for i, c := range s.Scenario {
		if c.Tick < 0 {
			return errors.Wrapf(ErrInvalidScenario, "call %d: tick %d is negative", i, c.Tick)
		}
		if _, err := c.Request(); err != nil {
			return errors.Wrapf(ErrInvalidScenario, "call %d: %v", i, err)
		}
		if !s.Elevator.InRange(c.Floor) {
			return errors.Wrapf(ErrInvalidScenario, "call %d: floor %d is outside [%d, %d]",
				i, c.Floor, s.Elevator.MinFloor, s.Elevator.MaxFloor)
		}
	}
	return nil
}

// ParseLevel maps a log_level setting to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", s)
	}
	return level, nil
}
