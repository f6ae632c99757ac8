package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/calvinalkan/prodlist/internal/catalog"
	"github.com/calvinalkan/prodlist/internal/page"
)

// newLogger returns a logger writing to errOut. The level starts at warn and
// is raised or lowered once config is loaded.
func newLogger(errOut io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return log
}

// loadCatalog reads the configured fixtures and builds the catalog.
// Integrity violations reject the fixtures before anything is rendered.
func loadCatalog(cfg *catalog.Config, log *logrus.Logger) (*catalog.Catalog, error) {
	source := cfg.FixturesAbs
	if source == "" {
		source = "built-in"
	}

	fx, err := catalog.LoadFixtures(cfg.FixturesAbs)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(fx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.WithFields(logrus.Fields{
		"source":     source,
		"users":      len(fx.Users),
		"categories": len(fx.Categories),
		"products":   len(fx.Products),
	}).Debug("fixtures loaded")

	return c, nil
}

// newPage builds a page over c with the given owner and search text applied
// as if the user had clicked and typed them.
func newPage(c *catalog.Catalog, owner, search string, log *logrus.Logger) *page.Page {
	p := page.New(c)

	if owner != catalog.AllOwners {
		dispatch(p, page.SelectOwner{Name: owner}, log)
	}

	if search != "" {
		dispatch(p, page.EditQuery{Text: search}, log)
	}

	return p
}

func dispatch(p *page.Page, ev page.Event, log *logrus.Logger) {
	st := p.Dispatch(ev)

	log.WithFields(logrus.Fields{
		"event": ev.String(),
		"owner": st.Owner,
		"query": st.Query,
	}).Debug("event dispatched")
}
