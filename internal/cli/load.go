package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/veretenov/smtree/pkg/document"
	"github.com/veretenov/smtree/pkg/model"
)

// readDocument picks the decoder by file extension: .graphml and .xml go
// through the GraphML reader, everything else is treated as JSON.
func readDocument(path string) (*document.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphml", ".xml":
		return document.ReadGraphMLFile(path)
	default:
		return document.ReadFile(path)
	}
}

// loadModel reads the diagram at path into a fresh model. Identifier
// disambiguations from the load report are surfaced as warnings.
func loadModel(ctx context.Context, path string) (*model.Model, *model.LoadReport, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	doc, err := readDocument(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	m := model.New()
	m.SetListener(&traceListener{m: m, logger: logger})
	report, err := m.Load(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	m.SetListener(nil)

	for _, r := range report.Renamed {
		logger.Warnf("identifier %q already taken, imported as %q", r.Requested, r.Effective)
	}
	p.done(fmt.Sprintf("Loaded %s: %d states, %d transitions, %d comments",
		m.Name(), report.States, report.Transitions, report.Comments))

	return m, report, nil
}

// traceListener logs model change notifications at debug level. Useful
// with --verbose to watch the notification brackets around a load or a
// structural mutation.
type traceListener struct {
	m      *model.Model
	logger *log.Logger
}

func (l *traceListener) TreeAboutToBeReset() { l.logger.Debug("tree about to be reset") }
func (l *traceListener) TreeReset()          { l.logger.Debug("tree reset") }

func (l *traceListener) ItemChanged(addr model.Address) {
	l.logger.Debugf("item changed: %s", l.m.AddressToItem(addr).Title())
}

func (l *traceListener) RowsAboutToBeRemoved(parent model.Address, first, last int) {
	l.logger.Debugf("removing rows %d-%d under %s", first, last, l.m.AddressToItem(parent).Title())
}

func (l *traceListener) RowsRemoved(model.Address, int, int) { l.logger.Debug("rows removed") }

func (l *traceListener) RowsAboutToBeInserted(parent model.Address, first, last int) {
	l.logger.Debugf("inserting rows %d-%d under %s", first, last, l.m.AddressToItem(parent).Title())
}

func (l *traceListener) RowsInserted(model.Address, int, int) { l.logger.Debug("rows inserted") }
