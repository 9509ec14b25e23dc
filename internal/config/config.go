package config

// Config is the root configuration: a declared version, general
// settings, node-type styling, and the mode registry.
type Config struct {
	Version   string          `yaml:"version"`
	General   GeneralConfig   `yaml:"general"`
	NodeTypes NodeTypesConfig `yaml:"node_types"`
	Modes     ModesConfig     `yaml:"modes"`
}

// Extended merges c, as the user overlay, onto a fresh built-in
// baseline and returns the effective configuration. The overlay's own
// Version is carried through untouched. Neither input value is mutated;
// the result is meant to be held immutable for the process lifetime.
func (c Config) Extended() Config {
	def := Default()
	def.General = def.General.Extend(c.General)
	def.NodeTypes = def.NodeTypes.Extend(c.NodeTypes)
	def.Modes = def.Modes.Extend(c.Modes)
	def.Version = c.Version
	return def
}
