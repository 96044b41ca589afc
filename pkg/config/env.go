package config

import (
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/ports"
)

// Environment variables read by commitstory.
const (
	EnvCommitMessage = "COMMIT_MESSAGE"
	EnvCommitSHA     = "COMMIT_SHA_FULL"
	EnvFilesChanged  = "FILES_CHANGED"
	EnvLinesAdded    = "LINES_ADDED"
	EnvLinesDeleted  = "LINES_DELETED"
	EnvOutputPath    = "OUTPUT_PATH"
	EnvTemplatePath  = "TEMPLATE_PATH"
	EnvChromePath    = "CHROME_PATH"
)

// Fallback values for unset commit variables.
const (
	DefaultCommitMessage = "No commit message found"
	DefaultCommitSHA     = "N/A"
	DefaultCount         = "0"
	DefaultOutputPath    = "commit-story.png"
)

// Dotenv files, in lookup order. Only the first one found is loaded.
var DotEnvFiles = []string{".env", ".env.development"}

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads the first dotenv file found in dir into the process
// environment without overriding variables that are already set. It
// returns the loaded path, or "" when none of DotEnvFiles exists.
func LoadDotEnv(fsys ports.FileSystem, dir string) (string, error) {
	for _, name := range DotEnvFiles {
		path := filepath.Join(dir, name)
		exists, err := fsys.Exists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

// DefaultMetadata returns the values used when nothing else is known.
func DefaultMetadata() commit.Metadata {
	return commit.Metadata{
		Message:      DefaultCommitMessage,
		SHA:          DefaultCommitSHA,
		FilesChanged: DefaultCount,
		LinesAdded:   DefaultCount,
		LinesDeleted: DefaultCount,
		OutputPath:   DefaultOutputPath,
	}
}

// MergeCommitInfo replaces base with values read from a repository.
// OutputPath is kept.
func MergeCommitInfo(base commit.Metadata, info ports.CommitInfo) commit.Metadata {
	if info.Message != "" {
		base.Message = info.Message
	}
	if info.Hash != "" {
		base.SHA = info.Hash
	}
	base.FilesChanged = strconv.Itoa(info.FilesChanged)
	base.LinesAdded = strconv.Itoa(info.LinesAdded)
	base.LinesDeleted = strconv.Itoa(info.LinesDeleted)
	return base
}

// MetadataFromEnv overlays environment variables on base. Unset and empty
// variables keep the base value.
func MetadataFromEnv(lookup LookupFunc, base commit.Metadata) commit.Metadata {
	apply := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	apply(EnvCommitMessage, &base.Message)
	apply(EnvCommitSHA, &base.SHA)
	apply(EnvFilesChanged, &base.FilesChanged)
	apply(EnvLinesAdded, &base.LinesAdded)
	apply(EnvLinesDeleted, &base.LinesDeleted)
	apply(EnvOutputPath, &base.OutputPath)
	return base
}

// ApplyEnv overlays the non-commit environment variables on c.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookup(EnvTemplatePath); ok && v != "" {
		c.TemplatePath = v
	}
	if v, ok := lookup(EnvChromePath); ok && v != "" {
		c.ChromePath = v
	}
}

// BaseMetadata returns DefaultMetadata with the configured output path.
func (c Config) BaseMetadata() commit.Metadata {
	meta := DefaultMetadata()
	if c.OutputPath != "" {
		meta.OutputPath = c.OutputPath
	}
	return meta
}
