package config

import "time"

type Storage struct {
	Database Database   `envPrefix:"DATABASE_"`
	Bleve    BleveIndex `envPrefix:"BLEVE_"`
}

type Database struct {
	DSN   string `env:"DSN" envDefault:"data.sqlite"`
	Cache Cache  `envPrefix:"CACHE_"`
}

type BleveIndex struct {
	DSN string `env:"DSN" envDefault:"index.bleve"`
}

type Cache struct {
	Users UserCache `envPrefix:"USERS_"`
}

type UserCache struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Size    int           `env:"SIZE" envDefault:"1024"`
	TTL     time.Duration `env:"TTL" envDefault:"1m"`
}
