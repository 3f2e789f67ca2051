package filter

// Config carries table overrides loaded from yaml or the environment.
// Env format: DB_ERROR_STATUS_CODES="P2000:422,P2003:409".
type Config struct {
	StatusCodes map[string]int    `envconfig:"DB_ERROR_STATUS_CODES" yaml:"db_error_status_codes" validate:"dive,keys,len=5,startswith=P,endkeys,gte=100,lte=599"`
	Messages    map[string]string `envconfig:"DB_ERROR_MESSAGES" yaml:"db_error_messages" validate:"dive,keys,len=5,startswith=P,endkeys,required"`
}

// NewFromConfig is New with cfg's tables merged first; opts apply after.
func NewFromConfig(cfg Config, opts ...Option) *Filter {
	all := append([]Option{
		WithStatusCodes(cfg.StatusCodes),
		WithMessages(cfg.Messages),
	}, opts...)
	return New(all...)
}
