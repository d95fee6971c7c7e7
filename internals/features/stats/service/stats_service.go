package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/stats/dto"
)

// MonthlyVolume renvoie le nombre de demandes déposées mois par mois sur
// les douze derniers mois. Les mois sans dépôt sont renvoyés à zéro pour
// que le graphe côté front soit continu.
func MonthlyVolume(db *gorm.DB) ([]dto.MonthlyVolumeRow, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -11, 0)

	var rows []dto.MonthlyVolumeRow
	err := db.Raw(`
		SELECT to_char(date_trunc('month', submitted_at), 'YYYY-MM') AS month,
		       COUNT(*) AS count
		FROM demandes
		WHERE submitted_at >= ?
		GROUP BY 1
		ORDER BY 1`, start).Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	byMonth := make(map[string]int64, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r.Count
	}

	out := make([]dto.MonthlyVolumeRow, 0, 12)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0).Format("2006-01")
		out = append(out, dto.MonthlyVolumeRow{Month: m, Count: byMonth[m]})
	}
	return out, nil
}

// ResolvePeriod interprète les bornes du filtre, avec le mois courant
// par défaut. La borne haute est exclusive (lendemain de date_to).
func ResolvePeriod(f dto.ReportFilter) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if f.DateFrom != "" {
		parsed, err := time.Parse("2006-01-02", f.DateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date_from invalide")
		}
		from = parsed
	}
	if f.DateTo != "" {
		parsed, err := time.Parse("2006-01-02", f.DateTo)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date_to invalide")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Période invalide")
	}
	return from, to, nil
}

// BuildFinancialReport agrège les paiements de la période par moyen de
// paiement puis par type de service.
func BuildFinancialReport(db *gorm.DB, from, to time.Time) (*dto.FinancialReport, error) {
	report := dto.FinancialReport{From: from, To: to}

	err := db.Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM paiements
		WHERE payment_date >= ? AND payment_date < ?`, from, to).
		Row().Scan(&report.GrandTotal, &report.Count)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	if err := db.Raw(`
		SELECT method AS key, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM paiements
		WHERE payment_date >= ? AND payment_date < ?
		GROUP BY method
		ORDER BY total DESC`, from, to).Scan(&report.ByMethod).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	if err := db.Raw(`
		SELECT COALESCE(d.service_type, 'SANS_DEMANDE') AS key,
		       COUNT(*) AS count,
		       COALESCE(SUM(p.amount), 0) AS total
		FROM paiements p
		LEFT JOIN demandes d ON d.id = p.demande_id
		WHERE p.payment_date >= ? AND p.payment_date < ?
		GROUP BY 1
		ORDER BY total DESC`, from, to).Scan(&report.ByService).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}

	return &report, nil
}

// RecentActivity mélange les derniers dépôts, changements de statut et
// paiements en un fil unique, du plus récent au plus ancien.
func RecentActivity(db *gorm.DB, limit int) ([]dto.ActivityRow, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	var rows []dto.ActivityRow
	err := db.Raw(`
		SELECT * FROM (
			SELECT 'demande' AS kind, ticket_number AS ticket,
			       'Nouvelle demande ' || service_type AS label,
			       submitted_at AS occurred_at
			FROM demandes
			UNION ALL
			SELECT 'statut' AS kind, d.ticket_number AS ticket,
			       h.old_status || ' -> ' || h.new_status AS label,
			       h.changed_at AS occurred_at
			FROM demande_status_history h
			JOIN demandes d ON d.id = h.demande_id
			UNION ALL
			SELECT 'paiement' AS kind, COALESCE(d.ticket_number, '') AS ticket,
			       'Paiement ' || p.method || ' de ' || p.amount || ' FCFA' AS label,
			       p.payment_date AS occurred_at
			FROM paiements p
			LEFT JOIN demandes d ON d.id = p.demande_id
		) activity
		ORDER BY occurred_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erreur interne")
	}
	return rows, nil
}
