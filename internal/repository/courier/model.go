package courier

type CourierDB struct {
	ID           int64
	CourierType  string
	Regions      []int32
	WorkingHours []string
}
