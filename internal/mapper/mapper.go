// Package mapper converts between persisted models and API shapes.
package mapper

import (
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/models"
)

// Mapper is stateless; the zero value is ready to use.
type Mapper struct{}

func New() *Mapper { return &Mapper{} }

func (m *Mapper) BinFromRequest(req dto.BinRequest) models.Bin {
	return models.Bin{
		UserID:   req.UserID,
		BinType:  req.BinType,
		Capacity: req.Capacity,
	}
}

func (m *Mapper) BinView(b models.Bin) dto.BinView {
	return dto.BinView{
		ID:       b.ID.Hex(),
		BinID:    b.BinID,
		UserID:   b.UserID,
		BinType:  b.BinType,
		Capacity: b.Capacity,
		Location: b.Location,
		Status:   b.Status,
	}
}

func (m *Mapper) BinViews(bins []models.Bin) []dto.BinView {
	return mapAll(bins, m.BinView)
}

func (m *Mapper) CollectionFromRequest(req dto.CollectionRequest) models.CollectionRecord {
	return models.CollectionRecord{
		UserID:         req.UserID,
		BinID:          req.BinID,
		BinType:        req.BinType,
		DriverName:     req.DriverName,
		CollectionDate: req.CollectionDate,
	}
}

func (m *Mapper) CollectionView(c models.CollectionRecord) dto.CollectionView {
	return dto.CollectionView{
		ID:             c.ID.Hex(),
		CollectorID:    c.CollectorID,
		UserID:         c.UserID,
		BinID:          c.BinID,
		BinType:        c.BinType,
		DriverName:     c.DriverName,
		CollectionDate: c.CollectionDate,
	}
}

func (m *Mapper) CollectionViews(records []models.CollectionRecord) []dto.CollectionView {
	return mapAll(records, m.CollectionView)
}

func (m *Mapper) DriverFromDTO(d dto.Driver) models.Driver {
	return models.Driver{DriverID: d.DriverID, DriverName: d.DriverName, Available: d.Available}
}

func (m *Mapper) DriverDTO(d models.Driver) dto.Driver {
	return dto.Driver{DriverID: d.DriverID, DriverName: d.DriverName, Available: d.Available}
}

func (m *Mapper) DriverDTOs(drivers []models.Driver) []dto.Driver {
	return mapAll(drivers, m.DriverDTO)
}

func (m *Mapper) ScheduleFromDTO(s dto.Schedule) models.Schedule {
	return models.Schedule{
		ScheduleID: s.ScheduleID,
		SmartBins:  cloneStrings(s.SmartBins),
		DriverID:   s.DriverID,
		Time:       s.Time,
		Route:      s.Route,
	}
}

func (m *Mapper) ScheduleDTO(s models.Schedule) dto.Schedule {
	return dto.Schedule{
		ScheduleID: s.ScheduleID,
		SmartBins:  cloneStrings(s.SmartBins),
		DriverID:   s.DriverID,
		Time:       s.Time,
		Route:      s.Route,
	}
}

func (m *Mapper) ScheduleDTOs(schedules []models.Schedule) []dto.Schedule {
	return mapAll(schedules, m.ScheduleDTO)
}

func (m *Mapper) PaymentFromRequest(req dto.PaymentRequest) models.Payment {
	return models.Payment{
		UserID:        req.UserID,
		PaymentAmount: req.PaymentAmount,
		PaymentDate:   req.PaymentDate,
	}
}

func (m *Mapper) PaymentView(p models.Payment) dto.PaymentView {
	return dto.PaymentView{
		ID:              p.ID.Hex(),
		PaymentID:       p.PaymentID,
		UserID:          p.UserID,
		PaymentAmount:   p.PaymentAmount,
		PaymentDate:     p.PaymentDate,
		NextPaymentDate: p.NextPaymentDate,
	}
}

func (m *Mapper) PaymentViews(payments []models.Payment) []dto.PaymentView {
	return mapAll(payments, m.PaymentView)
}

// UserFromRequest copies the profile fields. The password is left for the
// caller to hash.
func (m *Mapper) UserFromRequest(req dto.UserRequest) models.User {
	return models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Location:  req.Location,
	}
}

func (m *Mapper) UserView(u models.User) dto.UserView {
	return dto.UserView{
		ID:       u.ID.Hex(),
		UserID:   u.UserID,
		Username: u.Username,
		Location: u.Location,
		Status:   u.Status,
		Points:   u.Points,
	}
}

func (m *Mapper) UserViews(users []models.User) []dto.UserView {
	return mapAll(users, m.UserView)
}

func mapAll[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}
