package rider

import (
	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository/store"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Region:        r.Region,
		District:      r.District,
		Status:        entities.RiderStatusType(r.Status),
		WorkingStatus: entities.WorkingStatusType(r.WorkingStatus),
		CreatedAt:     r.CreatedAt,
	}
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i := range ridersDB {
		result[i] = *ToDomain(&ridersDB[i])
	}
	return result
}

func FromDomain(r *entities.Rider) map[string]any {
	row := map[string]any{
		"name":           r.Name,
		"email":          r.Email,
		"phone":          r.Phone,
		"region":         r.Region,
		"district":       r.District,
		"status":         r.Status.String(),
		"working_status": r.WorkingStatus.String(),
		"created_at":     r.CreatedAt,
	}
	if r.ID != "" {
		row["id"] = r.ID
	}
	return row
}

func FromDomainModify(m *entities.RiderModify) map[string]any {
	patch := make(map[string]any)
	if m == nil {
		return patch
	}

	if m.Name != nil {
		patch["name"] = *m.Name
	}
	if m.Email != nil {
		patch["email"] = *m.Email
	}
	if m.Phone != nil {
		patch["phone"] = *m.Phone
	}
	if m.Region != nil {
		patch["region"] = *m.Region
	}
	if m.District != nil {
		patch["district"] = *m.District
	}
	if m.Status != nil {
		patch["status"] = m.Status.String()
	}
	if m.WorkingStatus != nil {
		patch["working_status"] = m.WorkingStatus.String()
	}
	if m.CreatedAt != nil {
		patch["created_at"] = *m.CreatedAt
	}

	return patch
}

func FromDomainFilter(f entities.RiderFilter) sq.Sqlizer {
	conds := sq.And{}

	if f.Status != nil {
		conds = append(conds, sq.Eq{"status": f.Status.String()})
	}
	if f.WorkingStatus != nil {
		conds = append(conds, sq.Eq{"working_status": f.WorkingStatus.String()})
	}
	if f.Region != nil && *f.Region != "" {
		conds = append(conds, sq.ILike{"region": store.Contains(*f.Region)})
	}

	if len(conds) == 0 {
		return nil
	}
	return conds
}
