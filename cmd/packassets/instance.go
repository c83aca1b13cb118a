package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	packassets "github.com/alnah/go-packassets"
	"github.com/alnah/go-packassets/host"
	"github.com/alnah/go-packassets/internal/config"
	"github.com/alnah/go-packassets/internal/fileutil"
	"github.com/alnah/go-packassets/internal/hints"
)

// session is a loaded config plus the instances built from it.
type session struct {
	cfg      *config.Config
	registry *host.Registry
	logger   *log.Logger
	env      *envConfig
	flags    instanceFlags
}

// openSession loads the config named by the flag, PACKASSETS_CONFIG, or the
// default name, and prepares an instance registry.
func openSession(common commonFlags, inst instanceFlags, environ *Environment) (*session, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(environ.Stderr)

	logger := newLogger(environ.Stderr, common.quiet, common.verbose)

	if _, err := resolveTimeout(inst.timeout, envCfg); err != nil {
		return nil, err
	}

	name := firstNonEmpty(common.config, envCfg.ConfigPath, config.DefaultConfigName)
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	logger.Debug("config loaded", "name", name, "instances", len(cfg.Instances))

	return &session{
		cfg:      cfg,
		registry: host.NewRegistry(logger),
		logger:   logger,
		env:      envCfg,
		flags:    inst,
	}, nil
}

// instanceName returns the selected instance: flag, then PACKASSETS_INSTANCE, then "theme".
func (s *session) instanceName() string {
	return firstNonEmpty(s.flags.instance, s.env.Instance, host.DefaultInstanceName)
}

// open builds (once) and returns the named instance with its config.
func (s *session) open(name string) (*host.Instance, config.InstanceConfig, error) {
	ic, err := s.cfg.Instance(name)
	if err != nil {
		return nil, config.InstanceConfig{}, fmt.Errorf("%w%s", err, hints.ForInstanceNotFound(s.cfg.InstanceNames()))
	}

	timeout, err := resolveTimeout(s.flags.timeout, s.env)
	if err != nil {
		return nil, config.InstanceConfig{}, err
	}

	inst := s.registry.Register(name, func() *host.Instance {
		return host.NewInstance(ic.Configuration(),
			host.WithProductionURL(ic.ProductionURL),
			host.WithDevelopmentURL(firstNonEmpty(s.flags.developmentURL, s.env.DevelopmentURL, ic.DevelopmentURL)),
			host.WithDefaultFilePath(s.flags.filePath),
			host.WithLogger(s.logger.WithPrefix("packassets "+name)),
			host.WithResolverOptions(packassets.WithManifestTimeout(timeout)),
		).SetFrontendPriority(ic.FrontendPriority).SetEditorPriority(ic.EditorPriority)
	})
	if err := inst.Err(); err != nil {
		if errors.Is(err, packassets.ErrBaseURLRequired) {
			return nil, ic, fmt.Errorf("instance %q: %w%s", name, err, hints.ForBaseURLRequired())
		}
		return nil, ic, fmt.Errorf("instance %q: %w", name, err)
	}

	r := inst.Resolver()
	if r.ManifestError() != nil {
		s.logger.Warn("manifest unavailable, using conventional paths",
			"location", r.ManifestLocation(), "err", r.ManifestError())
	}
	return inst, ic, nil
}
