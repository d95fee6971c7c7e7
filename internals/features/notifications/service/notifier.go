package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ambassade_backend/internals/features/notifications/model"
)

// Contrat d'émission découplé : le cœur métier émet "<domaine>.<action>" avec
// {acteur, sujet} après un changement d'état commité. Le listener (ici) choisit
// le gabarit, résout les destinataires et fait le fan-out (ligne en base,
// email, room WebSocket) sans que l'émetteur n'attende la remise.

type Event struct {
	Name      string // ex. "demande.created"
	ActorID   uuid.UUID
	SubjectID uuid.UUID // destinataire de la notification

	Title string
	Body  string
	Email string // si non vide, un email est aussi envoyé
	Data  map[string]any
}

type Notifier struct {
	db     *gorm.DB
	events chan Event
}

var notifier *Notifier

// StartNotifier démarre le listener d'événements. À appeler après ConnectDB.
func StartNotifier(db *gorm.DB) *Notifier {
	notifier = &Notifier{
		db:     db,
		events: make(chan Event, 256),
	}
	go notifier.run()
	return notifier
}

// Emit publie un événement métier. Non bloquant, jamais d'erreur remontée :
// l'écriture métier est déjà commitée quand on arrive ici.
func Emit(ev Event) {
	if notifier == nil {
		return
	}
	select {
	case notifier.events <- ev:
	default:
		log.Printf("[WARN] File d'événements pleine, '%s' ignoré", ev.Name)
	}
}

func (n *Notifier) run() {
	for ev := range n.events {
		n.handle(ev)
	}
}

func (n *Notifier) handle(ev Event) {
	var data datatypes.JSON
	if ev.Data != nil {
		if raw, err := json.Marshal(ev.Data); err == nil {
			data = datatypes.JSON(raw)
		}
	}

	notif := model.NotificationModel{
		RecipientID: ev.SubjectID,
		Title:       ev.Title,
		Body:        ev.Body,
		Event:       ev.Name,
		Data:        data,
	}
	if err := n.db.Create(&notif).Error; err != nil {
		log.Printf("[ERROR] Notification '%s' : %v", ev.Name, err)
		return
	}

	if hub != nil {
		hub.Push(ev.SubjectID, notif)
	}

	if ev.Email != "" {
		SendMailAsync(ev.Email, ev.Title, fmt.Sprintf("<p>%s</p>", ev.Body))
	}
}
