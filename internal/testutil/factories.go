package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	leader := testutil.NewUser().WithName("Ana", "García").Build(t, db)
//	agent := testutil.NewUser().WithTeamLeader(leader.ID).Build(t, db)
type UserBuilder struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	NumeroTelefono string
	TeamLeaderID   string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:        MakeID(),
		FirstName: "Test",
		LastName:  "Agent " + randomAlphanumeric(4),
		Email:     MakeEmail("agent"),
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithName sets the first and last name.
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.FirstName = first
	b.LastName = last
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithTeamLeader assigns the user to a leader's team.
func (b *UserBuilder) WithTeamLeader(leaderID string) *UserBuilder {
	b.TeamLeaderID = leaderID
	return b
}

// Build creates the user in the database.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO "user" (id, first_name, last_name, email, numero_telefono, team_leader_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var leader sql.NullString
	if b.TeamLeaderID != "" {
		leader = sql.NullString{String: b.TeamLeaderID, Valid: true}
	}

	_, err := db.Exec(query, b.ID, b.FirstName, b.LastName, b.Email, b.NumeroTelefono, leader)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:             b.ID,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		NumeroTelefono: b.NumeroTelefono,
		TeamLeaderID:   b.TeamLeaderID,
	}
}

// OperationBuilder provides a fluent interface for creating test operations.
// The default is a closed sale of 100,000 at 3% broker / 40% advisor fees,
// representing both sides.
//
// Example usage:
//
//	op := testutil.NewOperation(agent.ID).
//	    WithEstado(model.EstadoEnCurso).
//	    WithValorReserva(250000).
//	    Build(t, db)
type OperationBuilder struct {
	op model.Operation
}

// NewOperation creates an OperationBuilder for the given advisor.
func NewOperation(userUID string) *OperationBuilder {
	return &OperationBuilder{op: model.Operation{
		ID:                         MakeID(),
		TipoOperacion:              model.TipoVenta,
		Estado:                     model.EstadoCerrada,
		ValorReserva:               100000,
		HonorariosBroker:           3000,
		HonorariosAsesor:           1200,
		PorcentajeHonorariosBroker: 3,
		PorcentajeHonorariosAsesor: 40,
		UserUID:                    userUID,
		PuntaCompradora:            true,
		PuntaVendedora:             true,
		FechaOperacion:             "2024-03-10",
		DireccionReserva:           MakeAddress("Av. Corrientes"),
		CreatedAt:                  time.Now().UTC(),
	}}
}

// WithID sets a custom ID.
func (b *OperationBuilder) WithID(id string) *OperationBuilder {
	b.op.ID = id
	return b
}

// WithTipo sets the operation type.
func (b *OperationBuilder) WithTipo(tipo string) *OperationBuilder {
	b.op.TipoOperacion = tipo
	return b
}

// WithEstado sets the operation status.
func (b *OperationBuilder) WithEstado(estado string) *OperationBuilder {
	b.op.Estado = estado
	return b
}

// WithValorReserva sets the reservation value without touching the fee amounts.
func (b *OperationBuilder) WithValorReserva(valor float64) *OperationBuilder {
	b.op.ValorReserva = valor
	return b
}

// WithHonorarios sets the stored broker and advisor fee amounts.
func (b *OperationBuilder) WithHonorarios(broker, asesor float64) *OperationBuilder {
	b.op.HonorariosBroker = broker
	b.op.HonorariosAsesor = asesor
	return b
}

// WithPorcentajes sets the broker and advisor fee percentages.
func (b *OperationBuilder) WithPorcentajes(broker, asesor float64) *OperationBuilder {
	b.op.PorcentajeHonorariosBroker = broker
	b.op.PorcentajeHonorariosAsesor = asesor
	return b
}

// WithAdicional sets the co-advisor, making the operation shared.
func (b *OperationBuilder) WithAdicional(userUID string) *OperationBuilder {
	b.op.UserUIDAdicional = userUID
	return b
}

// WithPuntas sets which sides of the deal the agency represents.
func (b *OperationBuilder) WithPuntas(compradora, vendedora bool) *OperationBuilder {
	b.op.PuntaCompradora = compradora
	b.op.PuntaVendedora = vendedora
	return b
}

// WithFechaOperacion sets the operation date (YYYY-MM-DD).
func (b *OperationBuilder) WithFechaOperacion(fecha string) *OperationBuilder {
	b.op.FechaOperacion = fecha
	return b
}

// WithPorcentajePuntas sets the per-side fee percentages.
func (b *OperationBuilder) WithPorcentajePuntas(compradora, vendedora float64) *OperationBuilder {
	b.op.PorcentajePuntaCompradora = &compradora
	b.op.PorcentajePuntaVendedora = &vendedora
	return b
}

// Exclusive marks the listing as exclusive to the agency.
func (b *OperationBuilder) Exclusive() *OperationBuilder {
	b.op.Exclusiva = true
	return b
}

// WithDireccion sets the property address.
func (b *OperationBuilder) WithDireccion(direccion string) *OperationBuilder {
	b.op.DireccionReserva = direccion
	return b
}

// Build creates the operation in the database.
func (b *OperationBuilder) Build(t *testing.T, db *sql.DB) model.Operation {
	t.Helper()

	op := b.op
	query := `
		INSERT INTO operation (
			id, tipo_operacion, estado, valor_reserva, honorarios_broker, honorarios_asesor,
			porcentaje_honorarios_broker, porcentaje_honorarios_asesor, porcentaje_compartido, porcentaje_referido,
			user_uid, user_uid_adicional, realizador_venta, exclusiva, punta_compradora, punta_vendedora,
			porcentaje_punta_compradora, porcentaje_punta_vendedora, fecha_operacion, fecha_cierre, fecha_reserva,
			direccion_reserva, localidad_reserva, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		op.ID, op.TipoOperacion, op.Estado, op.ValorReserva, op.HonorariosBroker, op.HonorariosAsesor,
		op.PorcentajeHonorariosBroker, op.PorcentajeHonorariosAsesor, nullableFloat(op.PorcentajeCompartido), nullableFloat(op.PorcentajeReferido),
		op.UserUID, nullableString(op.UserUIDAdicional), nullableString(op.RealizadorVenta), op.Exclusiva, op.PuntaCompradora, op.PuntaVendedora,
		nullableFloat(op.PorcentajePuntaCompradora), nullableFloat(op.PorcentajePuntaVendedora),
		nullableString(op.FechaOperacion), nullableString(op.FechaCierre), nullableString(op.FechaReserva),
		nullableString(op.DireccionReserva), nullableString(op.LocalidadReserva),
		op.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to create test operation: %v", err)
	}

	return op
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	e model.Expense
}

// NewExpense creates an ExpenseBuilder for the given advisor.
func NewExpense(userUID string) *ExpenseBuilder {
	return &ExpenseBuilder{e: model.Expense{
		ID:              MakeID(),
		UserUID:         userUID,
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:          10000,
		AmountInDollars: 10,
		DollarRate:      1000,
		ExpenseType:     "Publicidad",
		Description:     "Test expense",
		CreatedAt:       time.Now().UTC(),
	}}
}

// WithID sets a custom ID.
func (b *ExpenseBuilder) WithID(id string) *ExpenseBuilder {
	b.e.ID = id
	return b
}

// WithDate sets the expense date.
func (b *ExpenseBuilder) WithDate(date time.Time) *ExpenseBuilder {
	b.e.Date = date
	return b
}

// WithAmount sets the amount and the rate used for the dollar conversion.
func (b *ExpenseBuilder) WithAmount(amount, dollarRate float64) *ExpenseBuilder {
	b.e.Amount = amount
	b.e.DollarRate = dollarRate
	b.e.AmountInDollars = 0
	if dollarRate != 0 {
		b.e.AmountInDollars = amount / dollarRate
	}
	return b
}

// Recurring marks the expense as recurring.
func (b *ExpenseBuilder) Recurring() *ExpenseBuilder {
	b.e.IsRecurring = true
	return b
}

// WithRecurringSource marks the expense as a clone of sourceID.
func (b *ExpenseBuilder) WithRecurringSource(sourceID string) *ExpenseBuilder {
	b.e.RecurringSourceID = sourceID
	return b
}

// Build creates the expense in the database.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	e := b.e
	query := `
		INSERT INTO expense (id, user_uid, date, amount, amount_in_dollars, dollar_rate, expense_type, description, is_recurring, recurring_source_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		e.ID, e.UserUID, e.Date.Format("2006-01-02"), e.Amount, e.AmountInDollars, e.DollarRate,
		e.ExpenseType, e.Description, e.IsRecurring, nullableString(e.RecurringSourceID),
		e.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return e
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
