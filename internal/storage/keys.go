package storage

import "time"

// Key names one logical entry. Primary and Secondary are the physical key names
// in each backend; they only differ for applications.
type Key struct {
	Primary   string
	Secondary string
	TTL       time.Duration // secondary store horizon
}

const (
	JobsKey               = "referrify_jobs"
	ApplicationsKey       = "referrify_job_applications"
	ApplicationsMirrorKey = "referrify_applications"
	NotificationsKey      = "referrify_notifications"
	UserSessionKey        = "userSession"
	IsLoggedInKey         = "isLoggedIn"
	UserRoleKey           = "userRole"
	ProfilePictureKey     = "profilePicture"
	StudentProfileKey     = "studentProfile"
	AlumniProfileKey      = "alumniProfile"
	AdminProfileKey       = "adminProfile"
)

const (
	DefaultGeneralTTL    = 30 * 24 * time.Hour
	DefaultSessionTTL    = 7 * 24 * time.Hour
	DefaultCollectionTTL = 365 * 24 * time.Hour
)

// Horizons are the secondary-store expiries per kind of data
type Horizons struct {
	General    time.Duration
	Session    time.Duration
	Collection time.Duration
}

func DefaultHorizons() Horizons {
	return Horizons{
		General:    DefaultGeneralTTL,
		Session:    DefaultSessionTTL,
		Collection: DefaultCollectionTTL,
	}
}

func (h Horizons) orDefault() Horizons {
	d := DefaultHorizons()
	if h.General > 0 {
		d.General = h.General
	}
	if h.Session > 0 {
		d.Session = h.Session
	}
	if h.Collection > 0 {
		d.Collection = h.Collection
	}
	return d
}

// Named returns a key stored under the same name in both backends
func Named(name string, ttl time.Duration) Key {
	return Key{Primary: name, Secondary: name, TTL: ttl}
}

// Jobs use the general horizon
func (h Horizons) Jobs() Key {
	return Named(JobsKey, h.orDefault().General)
}

func (h Horizons) Applications() Key {
	return Key{
		Primary:   ApplicationsKey,
		Secondary: ApplicationsMirrorKey,
		TTL:       h.orDefault().Collection,
	}
}

func (h Horizons) Notifications() Key {
	return Named(NotificationsKey, h.orDefault().Collection)
}

func (h Horizons) SessionKey(name string) Key {
	return Named(name, h.orDefault().Session)
}

func (h Horizons) GeneralKey(name string) Key {
	return Named(name, h.orDefault().General)
}
