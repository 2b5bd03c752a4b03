package config

type configError string

var _ error = configError("")

func (err configError) Error() string {
	return string(err)
}

const (
	ErrRead          = configError("cannot read config file")
	ErrInvalid       = configError("invalid config")
	ErrUnknownFormat = configError("unknown config file format")
)
