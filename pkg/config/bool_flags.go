package config

// SetBrowser records an explicit browser value, including the empty string.
func (c *Config) SetBrowser(value string) {
	if c == nil {
		return
	}
	c.Browser = value
	c.setFlags.browser = true
}

func (c *Config) browserSet() bool {
	if c == nil {
		return false
	}
	return c.setFlags.browser
}

// setLoggingVerbose records an explicit verbose flag value from configuration.
func (c *Config) setLoggingVerbose(value bool) {
	if c == nil {
		return
	}
	c.Logging.Verbose = value
	c.setFlags.loggingVerbose = true
}

func (c *Config) loggingVerboseSet() bool {
	if c == nil {
		return false
	}
	return c.setFlags.loggingVerbose
}

// setLoggingQuiet records an explicit quiet flag value from configuration.
func (c *Config) setLoggingQuiet(value bool) {
	if c == nil {
		return
	}
	c.Logging.Quiet = value
	c.setFlags.loggingQuiet = true
}

func (c *Config) loggingQuietSet() bool {
	if c == nil {
		return false
	}
	return c.setFlags.loggingQuiet
}
