package courier

import (
	"fmt"

	"lavka/internal/entities"
	"lavka/pkg/hours"
)

func ToDomain(c *CourierDB) (*entities.Courier, error) {
	if c == nil {
		return nil, nil
	}

	workingHours, err := hours.Parse(c.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("courier %d stored working hours: %w", c.ID, err)
	}

	return &entities.Courier{
		ID:           c.ID,
		Type:         entities.CourierType(c.CourierType),
		Regions:      c.Regions,
		WorkingHours: workingHours,
	}, nil
}

func FromDomain(c *entities.Courier) *CourierDB {
	if c == nil {
		return nil
	}

	regions := c.Regions
	if regions == nil {
		regions = []int32{}
	}

	return &CourierDB{
		ID:           c.ID,
		CourierType:  c.Type.String(),
		Regions:      regions,
		WorkingHours: c.WorkingHours.Strings(),
	}
}

func ToDomainList(couriersDB []CourierDB) ([]entities.Courier, error) {
	if len(couriersDB) == 0 {
		return []entities.Courier{}, nil
	}

	result := make([]entities.Courier, len(couriersDB))
	for i := range couriersDB {
		c, err := ToDomain(&couriersDB[i])
		if err != nil {
			return nil, err
		}
		result[i] = *c
	}
	return result, nil
}
