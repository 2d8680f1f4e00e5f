package internal

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

type Config struct {
	HTTPServerPort    uint16 `json:"http-server-port"`
	ReadTimeout       int64  `json:"read-timeout"`
	WriteTimeout      int64  `json:"write-timeout"`
	DBName            string `json:"db-name"`
	TemplateDirectory string `json:"template-directory"`
	MediaDirectory    string `json:"media-directory"`
	LogDirectory      string `json:"log-directory"`
	EnableLogging     bool   `json:"enable-logging"`
	SecretKey         string `json:"secret-key"`
	RedisAddr         string `json:"redis-addr"` // empty means the in-process page cache is used
	CacheTTLSeconds   int64  `json:"cache-ttl-seconds"`
}

func LoadConfig(folderPath string) (*Config, error) {

	file, err := os.OpenFile(filepath.Join(folderPath, ".cfg"), os.O_RDONLY, 0755)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config *Config = &Config{}
	if err = json.Unmarshal(payload, config); err != nil {
		return nil, err
	}

	if config.CacheTTLSeconds == 0 {
		config.CacheTTLSeconds = 20
	}

	return config, nil
}

// RetrieveWebTemplates maps each page template under templateDir to the set
// of files (layouts first, page last) it must be parsed with.
func RetrieveWebTemplates(templateDir string) (map[string][]string, error) {

	mapping := make(map[string][]string)

	layoutPath := filepath.Join(templateDir, "layouts")
	layoutFiles, err := filepath.Glob(filepath.Join(layoutPath, "*.html"))
	if err != nil {
		return nil, err
	}

	pageFiles, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}

	for _, page := range pageFiles {
		files := append([]string{}, layoutFiles...)
		files = append(files, page)
		mapping[filepath.Base(page)] = files
	}

	return mapping, nil
}
