package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/leo-ar/pickit-api/internal/domain/entity"
)

// SlaSource sirve SLAs de envío desde un snapshot JSON (mismo rol offline que
// Source para las ventas). El archivo se lee completo al construir para que
// un snapshot roto falle al arrancar y no en mitad de una corrida.
type SlaSource struct {
	records map[int64]entity.SlaRecord
}

type slaFile struct {
	Slas []slaEntry `json:"slas"`
}

type slaEntry struct {
	ShipmentID    int64      `json:"shipment_id"`
	Estado        string     `json:"estado"`
	FechaPrevista *time.Time `json:"fecha_prevista"`
	Expedited     bool       `json:"expedited"`
}

// NewSlaSource lee y decodifica el snapshot de SLAs completo.
func NewSlaSource(path string) (*SlaSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer snapshot de SLAs %q: %w", path, err)
	}
	var file slaFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decodificar snapshot de SLAs %q: %w", path, err)
	}
	records := make(map[int64]entity.SlaRecord, len(file.Slas))
	for _, e := range file.Slas {
		records[e.ShipmentID] = entity.SlaRecord{
			Status:       e.Estado,
			ExpectedDate: e.FechaPrevista,
			Expedited:    e.Expedited,
		}
	}
	return &SlaSource{records: records}, nil
}

// Fetch devuelve el SLA del envío, o (nil, nil) si el snapshot no lo tiene.
func (s *SlaSource) Fetch(_ context.Context, shipmentID int64) (*entity.SlaRecord, error) {
	rec, ok := s.records[shipmentID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
