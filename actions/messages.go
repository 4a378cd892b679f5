package actions

// User-facing operation messages, in French like the rest of the product copy
const (
	MsgInvalidFields  = "Champs invalides."
	MsgAuthRequired   = "Authentification requise."
	MsgAdminOnly      = "Action réservée aux administrateurs."
	MsgUserCreateDeny = "Non autorisé. Seuls les administrateurs peuvent créer des comptes."
	MsgEmailTaken     = "Erreur : Cet email est peut-être déjà utilisé."
	MsgUserCreated    = "Utilisateur créé avec succès !"

	MsgClientCreated = "Client ajouté avec succès !"
	MsgClientUpdated = "Client mis à jour avec succès !"
	MsgClientDeleted = "Client supprimé avec succès !"

	MsgCoachCreated        = "Coach ajouté avec succès !"
	MsgCoachDeleted        = "Coach supprimé avec succès !"
	MsgCoachProfileUpdated = "Profil mis à jour avec succès !"
	MsgNotYourProfile      = "Vous ne pouvez pas modifier ce profil."

	MsgAbsenceDeclared = "Absence déclarée avec succès !"
	MsgAbsenceReviewed = "Absence mise à jour !"
	MsgAbsenceDeleted  = "Absence supprimée."
	MsgNotYourAbsence  = "Vous ne pouvez pas modifier cette absence."

	MsgServiceCreated = "Prestation ajoutée avec succès !"
	MsgServiceDeleted = "Prestation supprimée."

	MsgSessionScheduled = "Séance planifiée avec succès !"
	MsgSessionUpdated   = "Séance mise à jour !"
	MsgSessionDeleted   = "Séance supprimée."
	MsgNotYourSession   = "Vous ne pouvez pas modifier cette séance."

	MsgMeasurementAdded = "Mesure ajoutée"
	MsgClientNotFound   = "Client introuvable."

	MsgSessionNotFound       = "Séance introuvable."
	MsgRequestSent           = "Demande envoyée avec succès."
	MsgRequestTooLate        = "Impossible de demander une modification moins de 24h avant la séance."
	MsgRequestAlreadyPending = "Une demande est déjà en attente pour cette séance."
	MsgRequestNotFound       = "Demande introuvable."
	MsgRequestAlreadyDone    = "Cette demande a déjà été traitée."
	MsgRequestApproved       = "Demande acceptée."
	MsgRequestRejected       = "Demande refusée."

	MsgSettingsUpdated = "Objectif mis à jour !"
)
