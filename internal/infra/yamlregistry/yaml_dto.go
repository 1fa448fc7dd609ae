package yamlregistry

type YAMLRegistry struct {
	Codes []YAMLStatus `yaml:"codes"`
}

type YAMLStatus struct {
	Code        int    `yaml:"code"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`
	Link        string `yaml:"link"`
}
