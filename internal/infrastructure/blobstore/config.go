package blobstore

type Config struct {
	Dir string `yaml:"dir"`
}
