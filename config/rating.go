package config

// Rating 评分取值范围，入口校验和存储约束共用同一份，默认 0..5
type Rating struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

func DefaultRating() *Rating {
	return &Rating{Min: 0, Max: 5}
}

func ProvideRatingConfig(cfg *Config) *Rating {
	if cfg.Rating == nil {
		return DefaultRating()
	}
	return cfg.Rating
}
