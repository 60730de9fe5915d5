package config

// applyOperationDefaults applies global defaults to operation-specific
// configuration, using pointer fields to distinguish unset from zero.
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetSuggestConfig returns the AI configuration for the suggestion operation
// with fallback to global config
func (c *Config) GetSuggestConfig() OperationAIConfig {
	config := c.AI.Suggest
	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.Suggest == "" {
		config.CustomPrompts.SystemPrompts.Suggest = c.AI.CustomPrompts.SystemPrompts.Suggest
	}
	if config.CustomPrompts.UserPrompts.Suggest == "" {
		config.CustomPrompts.UserPrompts.Suggest = c.AI.CustomPrompts.UserPrompts.Suggest
	}

	return config
}

// GetRealtimeConfig returns the AI configuration for the realtime operation
// with fallback to global config
func (c *Config) GetRealtimeConfig() OperationAIConfig {
	config := c.AI.Realtime
	c.applyOperationDefaults(&config)

	if config.CustomPrompts.SystemPrompts.Realtime == "" {
		config.CustomPrompts.SystemPrompts.Realtime = c.AI.CustomPrompts.SystemPrompts.Realtime
	}
	if config.CustomPrompts.UserPrompts.Realtime == "" {
		config.CustomPrompts.UserPrompts.Realtime = c.AI.CustomPrompts.UserPrompts.Realtime
	}

	return config
}

// HasAIKey reports whether any AI API key is configured.
func (c *Config) HasAIKey() bool {
	return c.AI.APIKey != "" || c.AI.Suggest.APIKey != "" || c.AI.Realtime.APIKey != ""
}
