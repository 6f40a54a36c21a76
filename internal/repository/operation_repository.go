package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

const operationColumns = `
	id, tipo_operacion, estado, valor_reserva, honorarios_broker, honorarios_asesor,
	porcentaje_honorarios_broker, porcentaje_honorarios_asesor, porcentaje_compartido, porcentaje_referido,
	user_uid, user_uid_adicional, realizador_venta, exclusiva, punta_compradora, punta_vendedora,
	porcentaje_punta_compradora, porcentaje_punta_vendedora, fecha_operacion, fecha_cierre, fecha_reserva,
	direccion_reserva, localidad_reserva, created_at`

// OperationRepository provides data access methods for the operation table.
type OperationRepository struct {
	db *sql.DB
}

// NewOperationRepository creates a new OperationRepository with the provided database connection.
func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(row rowScanner) (model.Operation, error) {
	var op model.Operation
	var (
		compartido, referido, pctCompradora, pctVendedora         sql.NullFloat64
		adicional, realizador, fechaOp, fechaCierre, fechaReserva sql.NullString
		direccion, localidad, createdAtStr                        sql.NullString
	)

	err := row.Scan(
		&op.ID,
		&op.TipoOperacion,
		&op.Estado,
		&op.ValorReserva,
		&op.HonorariosBroker,
		&op.HonorariosAsesor,
		&op.PorcentajeHonorariosBroker,
		&op.PorcentajeHonorariosAsesor,
		&compartido,
		&referido,
		&op.UserUID,
		&adicional,
		&realizador,
		&op.Exclusiva,
		&op.PuntaCompradora,
		&op.PuntaVendedora,
		&pctCompradora,
		&pctVendedora,
		&fechaOp,
		&fechaCierre,
		&fechaReserva,
		&direccion,
		&localidad,
		&createdAtStr,
	)
	if err != nil {
		return model.Operation{}, err
	}

	op.PorcentajeCompartido = floatPtr(compartido)
	op.PorcentajeReferido = floatPtr(referido)
	op.PorcentajePuntaCompradora = floatPtr(pctCompradora)
	op.PorcentajePuntaVendedora = floatPtr(pctVendedora)
	op.UserUIDAdicional = adicional.String
	op.RealizadorVenta = realizador.String
	op.FechaOperacion = fechaOp.String
	op.FechaCierre = fechaCierre.String
	op.FechaReserva = fechaReserva.String
	op.DireccionReserva = direccion.String
	op.LocalidadReserva = localidad.String

	if createdAtStr.Valid {
		// created_at is informational; an unparsable value is left as zero.
		op.CreatedAt, _ = ParseTime(createdAtStr.String)
	}

	return op, nil
}

// GetOperations retrieves operations matching the filter.
// A UserUID matches operations where the user is either the primary advisor or the co-advisor.
// Returns an empty slice if no operations match.
func (r *OperationRepository) GetOperations(filter model.OperationFilter) ([]model.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operation WHERE 1=1`
	var args []any

	if filter.UserUID != "" {
		query += " AND (user_uid = ? OR user_uid_adicional = ?)"
		args = append(args, filter.UserUID, filter.UserUID)
	}

	if filter.Estado != "" {
		query += " AND estado = ?"
		args = append(args, filter.Estado)
	}

	query += " ORDER BY rowid ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation table: %w", err)
	}
	defer rows.Close()

	operations := []model.Operation{}
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation table results: %w", err)
		}
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation table: %w", err)
	}

	return operations, nil
}

// GetOperationsForUsers retrieves the operations of several users in one query.
// The result is keyed by user ID; an operation shared by two of the given users
// appears under both. Users without operations are absent from the map.
func (r *OperationRepository) GetOperationsForUsers(userIDs []string) (map[string][]model.Operation, error) {
	result := make(map[string][]model.Operation)
	if len(userIDs) == 0 {
		return result, nil
	}

	marks := placeholders(len(userIDs))
	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT ` + operationColumns + ` FROM operation
		WHERE user_uid IN (` + marks + `) OR user_uid_adicional IN (` + marks + `)
		ORDER BY rowid ASC`

	args := make([]any, 0, len(userIDs)*2)
	for _, id := range userIDs {
		args = append(args, id)
	}
	for _, id := range userIDs {
		args = append(args, id)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation table: %w", err)
	}
	defer rows.Close()

	wanted := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}

	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation table results: %w", err)
		}

		if wanted[op.UserUID] {
			result[op.UserUID] = append(result[op.UserUID], op)
		}
		if op.UserUIDAdicional != "" && op.UserUIDAdicional != op.UserUID && wanted[op.UserUIDAdicional] {
			result[op.UserUIDAdicional] = append(result[op.UserUIDAdicional], op)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation table: %w", err)
	}

	return result, nil
}

// GetOperation retrieves a single operation by ID.
// Returns apperrors.ErrOperationNotFound if it does not exist.
func (r *OperationRepository) GetOperation(operationID string) (model.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operation WHERE id = ?`

	op, err := scanOperation(r.db.QueryRow(query, operationID))
	if err == sql.ErrNoRows {
		return model.Operation{}, apperrors.ErrOperationNotFound
	}
	if err != nil {
		return model.Operation{}, fmt.Errorf("failed to query operation: %w", err)
	}

	return op, nil
}

func operationArgs(op *model.Operation) []any {
	return []any{
		op.TipoOperacion,
		op.Estado,
		op.ValorReserva,
		op.HonorariosBroker,
		op.HonorariosAsesor,
		op.PorcentajeHonorariosBroker,
		op.PorcentajeHonorariosAsesor,
		nullFloat(op.PorcentajeCompartido),
		nullFloat(op.PorcentajeReferido),
		op.UserUID,
		nullString(op.UserUIDAdicional),
		nullString(op.RealizadorVenta),
		op.Exclusiva,
		op.PuntaCompradora,
		op.PuntaVendedora,
		nullFloat(op.PorcentajePuntaCompradora),
		nullFloat(op.PorcentajePuntaVendedora),
		nullString(op.FechaOperacion),
		nullString(op.FechaCierre),
		nullString(op.FechaReserva),
		nullString(op.DireccionReserva),
		nullString(op.LocalidadReserva),
	}
}

// InsertOperation stores a new operation.
func (r *OperationRepository) InsertOperation(ctx context.Context, op *model.Operation) error {
	query := `
		INSERT INTO operation (
			tipo_operacion, estado, valor_reserva, honorarios_broker, honorarios_asesor,
			porcentaje_honorarios_broker, porcentaje_honorarios_asesor, porcentaje_compartido, porcentaje_referido,
			user_uid, user_uid_adicional, realizador_venta, exclusiva, punta_compradora, punta_vendedora,
			porcentaje_punta_compradora, porcentaje_punta_vendedora, fecha_operacion, fecha_cierre, fecha_reserva,
			direccion_reserva, localidad_reserva, id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	args := append(operationArgs(op), op.ID, op.CreatedAt.UTC().Format(timestampLayout))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	return nil
}

// UpdateOperation overwrites every mutable column of an existing operation.
// Returns apperrors.ErrOperationNotFound if no row was updated.
func (r *OperationRepository) UpdateOperation(ctx context.Context, op *model.Operation) error {
	query := `
		UPDATE operation SET
			tipo_operacion = ?, estado = ?, valor_reserva = ?, honorarios_broker = ?, honorarios_asesor = ?,
			porcentaje_honorarios_broker = ?, porcentaje_honorarios_asesor = ?, porcentaje_compartido = ?, porcentaje_referido = ?,
			user_uid = ?, user_uid_adicional = ?, realizador_venta = ?, exclusiva = ?, punta_compradora = ?, punta_vendedora = ?,
			porcentaje_punta_compradora = ?, porcentaje_punta_vendedora = ?, fecha_operacion = ?, fecha_cierre = ?, fecha_reserva = ?,
			direccion_reserva = ?, localidad_reserva = ?
		WHERE id = ?
	`

	args := append(operationArgs(op), op.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	return requireAffected(result, apperrors.ErrOperationNotFound)
}

// UpdateEstado changes only the lifecycle status of an operation.
func (r *OperationRepository) UpdateEstado(ctx context.Context, operationID, estado string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE operation SET estado = ? WHERE id = ?`, estado, operationID)
	if err != nil {
		return fmt.Errorf("failed to update operation status: %w", err)
	}

	return requireAffected(result, apperrors.ErrOperationNotFound)
}

// DeleteOperation removes an operation.
// Returns apperrors.ErrOperationNotFound if it does not exist.
func (r *OperationRepository) DeleteOperation(ctx context.Context, operationID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM operation WHERE id = ?`, operationID)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	return requireAffected(result, apperrors.ErrOperationNotFound)
}
