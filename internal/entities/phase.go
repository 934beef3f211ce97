package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid parcel transition")
	// ErrAlreadyInPhase повтор идемпотентного события, вызывающий считает это успехом.
	ErrAlreadyInPhase = errors.New("parcel already in phase")
)

type Phase string

const (
	PhaseCreated   Phase = "created"
	PhasePaid      Phase = "paid"
	PhaseAssigned  Phase = "assigned"
	PhasePickedUp  Phase = "picked-up"
	PhaseDelivered Phase = "delivered"
	PhaseCashedOut Phase = "cashed-out"
	PhaseInvalid   Phase = "invalid"
)

func (p Phase) String() string {
	return string(p)
}

type Event string

const (
	EventPay     Event = "pay"
	EventAssign  Event = "assign"
	EventPickUp  Event = "pick-up"
	EventDeliver Event = "deliver"
	EventCashOut Event = "cash-out"
)

func (e Event) String() string {
	return string(e)
}

var phaseRank = map[Phase]int{
	PhaseCreated:   0,
	PhasePaid:      1,
	PhaseAssigned:  2,
	PhasePickedUp:  3,
	PhaseDelivered: 4,
	PhaseCashedOut: 5,
}

type transitionRule struct {
	from       []Phase
	to         Phase
	idempotent bool
}

var transitions = map[Event]transitionRule{
	EventPay:     {from: []Phase{PhaseCreated}, to: PhasePaid, idempotent: true},
	EventAssign:  {from: []Phase{PhasePaid}, to: PhaseAssigned},
	EventPickUp:  {from: []Phase{PhaseAssigned}, to: PhasePickedUp, idempotent: true},
	EventDeliver: {from: []Phase{PhaseAssigned, PhasePickedUp}, to: PhaseDelivered, idempotent: true},
	EventCashOut: {from: []Phase{PhaseDelivered}, to: PhaseCashedOut, idempotent: true},
}

// Phase выводит фазу жизненного цикла из трех флагов.
// Комбинации, нарушающие инварианты, дают PhaseInvalid.
func (p *Parcel) Phase() Phase {
	if p.CashOutStatus == CashOutCashedOut && p.DeliveryStatus != DeliveryDelivered {
		return PhaseInvalid
	}
	if p.DeliveryStatus != DeliveryNotCollected &&
		(p.PaymentStatus != PaymentPaid || p.AssignedRider == nil) {
		return PhaseInvalid
	}

	switch p.PaymentStatus {
	case PaymentUnpaid:
		return PhaseCreated
	case PaymentPaid:
	default:
		return PhaseInvalid
	}

	switch p.DeliveryStatus {
	case DeliveryNotCollected:
		return PhasePaid
	case DeliveryInTransition:
		return PhaseAssigned
	case DeliveryPickedUp:
		return PhasePickedUp
	case DeliveryDelivered:
		if p.CashOutStatus == CashOutCashedOut {
			return PhaseCashedOut
		}
		return PhaseDelivered
	default:
		return PhaseInvalid
	}
}

// Transition единственная функция переходов. Назад фазы не двигаются.
// Повтор идемпотентного события на той же или более поздней фазе возвращает
// исходную фазу и ErrAlreadyInPhase.
func Transition(from Phase, event Event) (Phase, error) {
	rule, ok := transitions[event]
	if !ok {
		return from, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event)
	}

	for _, allowed := range rule.from {
		if from == allowed {
			return rule.to, nil
		}
	}

	rank, known := phaseRank[from]
	if rule.idempotent && known && rank >= phaseRank[rule.to] {
		return from, ErrAlreadyInPhase
	}

	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
}
