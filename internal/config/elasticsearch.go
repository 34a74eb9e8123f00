package config

// ElasticsearchConfig содержит конфигурацию для подключения к Elasticsearch.
// An empty URL disables the search backend; catalog queries then use the
// in-process linear filter.
type ElasticsearchConfig struct {
	URL        string
	Index      string
	Username   string
	Password   string
	MaxRetries int
}

// Enabled reports whether a search backend is configured
func (c ElasticsearchConfig) Enabled() bool {
	return c.URL != ""
}
