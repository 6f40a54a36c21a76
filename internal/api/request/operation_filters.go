package request

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// estadoAliases maps lowercase spellings, with and without the accent, to the stored status.
var estadoAliases = map[string]string{
	"en curso": model.EstadoEnCurso,
	"cerrada":  model.EstadoCerrada,
	"caída":    model.EstadoCaida,
	"caida":    model.EstadoCaida,
}

// ParseOperationFilter converts the operation list query parameters into a model.OperationFilter.
// Both parameters are optional. estado is matched case-insensitively and the
// accent on "Caída" may be omitted.
func ParseOperationFilter(userUIDParam, estadoParam string) (model.OperationFilter, error) {
	filter := model.OperationFilter{
		UserUID: strings.TrimSpace(userUIDParam),
	}

	if estadoParam != "" {
		estado, ok := estadoAliases[strings.ToLower(strings.TrimSpace(estadoParam))]
		if !ok {
			return model.OperationFilter{}, fmt.Errorf("invalid estado: %s", estadoParam)
		}
		filter.Estado = estado
	}

	return filter, nil
}
