package internal

type Config struct {
	LogLevel string  `env:"LOG_LEVEL,default=INFO"`
	Label    *string `env:"ROSTER_LABEL"`
	Colours  bool    `env:"COLOURS,default=true"`
}
