package events

import "github.com/typeflow/font-picker/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) FetchStart() {
	logging.Trace("catalog.fetch-start", nil)
}

func (CatalogTracer) FetchLoaded(count int) {
	logging.Trace("catalog.fetch-loaded", map[string]interface{}{"count": count})
}

func (CatalogTracer) FetchFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.fetch-failed", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) Added(family string, download bool) {
	logging.Trace("catalog.added", map[string]interface{}{"family": family, "download": download})
}

func (CatalogTracer) Removed(family string) {
	logging.Trace("catalog.removed", map[string]interface{}{"family": family})
}

func (CatalogTracer) Activated(family string) {
	logging.Trace("catalog.activated", map[string]interface{}{"family": family})
}

func (CatalogTracer) DownloadFailed(family string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.download-failed", map[string]interface{}{"family": family, "error": err.Error()})
}
