package di

import (
	"github.com/goliatone/gitweb/internal/browse"
	"github.com/goliatone/gitweb/internal/launcher"
	"github.com/goliatone/gitweb/internal/repository"
)

// provideURLBuilder creates the default URL builder.
func provideURLBuilder(logger Logger) URLBuilder {
	return browse.NewBuilder(logger)
}

// provideLauncher creates a launcher that spawns browser commands and falls
// back to the operating system's default browser.
func provideLauncher(logger Logger) launcher.Launcher {
	return launcher.New(logger)
}

// provideRepositoryOpener returns a go-git backed repository discovery
// function.
func provideRepositoryOpener(logger Logger) RepositoryOpener {
	return func(dir string) (Repository, error) {
		repo, err := repository.Discover(dir, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}
