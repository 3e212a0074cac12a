package model

type MealPlan string

const (
	MealPlanRoomBreakfast MealPlan = "RBF"
	MealPlanRoomOnly      MealPlan = "RO"
)

func (m MealPlan) Valid() bool {
	switch m {
	case MealPlanRoomBreakfast, MealPlanRoomOnly:
		return true
	}

	return false
}

type PaymentStatus string

const (
	PaymentCash       PaymentStatus = "Cash"
	PaymentDebit      PaymentStatus = "Debit"
	PaymentTransfer   PaymentStatus = "TF"
	PaymentCredit     PaymentStatus = "Kredit"
	PaymentQris       PaymentStatus = "Qris"
	PaymentCompliment PaymentStatus = "Compliment"
	PaymentByOTA      PaymentStatus = "By OTA"
)

// PaymentStatuses lists every payment status in report order.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentCash,
		PaymentDebit,
		PaymentTransfer,
		PaymentCredit,
		PaymentQris,
		PaymentCompliment,
		PaymentByOTA,
	}
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentCash, PaymentDebit, PaymentTransfer, PaymentCredit, PaymentQris, PaymentCompliment, PaymentByOTA:
		return true
	}

	return false
}

// PaymentMethod is the channel the reservation came through.
type PaymentMethod string

const (
	ChannelWalkIn     PaymentMethod = "Walk In"
	ChannelByPhone    PaymentMethod = "By Phone"
	ChannelTraveloka  PaymentMethod = "Traveloka"
	ChannelAgoda      PaymentMethod = "Agoda"
	ChannelTiket      PaymentMethod = "Tiket"
	ChannelMGHoliday  PaymentMethod = "MG Holiday"
	ChannelKliknBook  PaymentMethod = "KliknBook"
	ChannelTiktok     PaymentMethod = "Tiktok"
	ChannelVoucher    PaymentMethod = "Voucher"
	ChannelSales      PaymentMethod = "Sales"
	ChannelBackOffice PaymentMethod = "Back Office"
)

// OTAChannels lists the online travel agencies in report column order.
func OTAChannels() []PaymentMethod {
	return []PaymentMethod{
		ChannelTraveloka,
		ChannelAgoda,
		ChannelTiket,
		ChannelMGHoliday,
		ChannelKliknBook,
		ChannelTiktok,
	}
}

// PrepaidChannels are the OTA channels followed by Voucher.
func PrepaidChannels() []PaymentMethod {
	return append(OTAChannels(), ChannelVoucher)
}

func (p PaymentMethod) Valid() bool {
	switch p {
	case ChannelWalkIn, ChannelByPhone, ChannelSales, ChannelBackOffice, ChannelVoucher:
		return true
	case ChannelTraveloka, ChannelAgoda, ChannelTiket, ChannelMGHoliday, ChannelKliknBook, ChannelTiktok:
		return true
	}

	return false
}

func (p PaymentMethod) IsOTA() bool {
	switch p {
	case ChannelTraveloka, ChannelAgoda, ChannelTiket, ChannelMGHoliday, ChannelKliknBook, ChannelTiktok:
		return true
	case ChannelWalkIn, ChannelByPhone, ChannelSales, ChannelBackOffice, ChannelVoucher:
		return false
	}

	return false
}

func (p PaymentMethod) IsOTAOrVoucher() bool {
	return p.IsOTA() || p == ChannelVoucher
}
