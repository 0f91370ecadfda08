package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/jaswdr/faker"
	"lavka/internal/entities"
)

var courierTypes = []string{
	entities.Foot.String(),
	entities.Bike.String(),
	entities.Auto.String(),
}

// generator выдает случайные, но всегда валидные курьеров и заказы.
type generator struct {
	fake    faker.Faker
	regions int
}

func newGenerator(regions int) *generator {
	return &generator{
		fake:    faker.New(),
		regions: max(regions, 1),
	}
}

func (g *generator) courier() entities.CourierCreate {
	count := g.fake.IntBetween(1, min(3, g.regions))
	regions := make([]int32, 0, count)
	for len(regions) < count {
		region := g.region()
		if !slices.Contains(regions, region) {
			regions = append(regions, region)
		}
	}

	// утренняя смена заканчивается не позже 15:00, вечерняя начинается с 16:00
	morningStart := g.fake.IntBetween(6, 11)
	workingHours := []string{span(morningStart, morningStart+g.fake.IntBetween(2, 4))}
	if g.fake.Boolean().Bool() {
		eveningStart := g.fake.IntBetween(16, 19)
		workingHours = append(workingHours, span(eveningStart, eveningStart+g.fake.IntBetween(1, 4)))
	}

	return entities.CourierCreate{
		Type:         entities.CourierType(g.fake.RandomStringElement(courierTypes)),
		Regions:      regions,
		WorkingHours: workingHours,
	}
}

func (g *generator) order() entities.OrderCreate {
	start := g.fake.IntBetween(8, 20)
	return entities.OrderCreate{
		Weight:        g.fake.Float64(2, 1, 40),
		Region:        g.region(),
		DeliveryHours: []string{span(start, start+g.fake.IntBetween(1, 3))},
		Cost:          int32(g.fake.IntBetween(100, 3000)), //nolint:gosec // границы заданы выше
	}
}

// completeTime момент завершения внутри дня назначения.
func (g *generator) completeTime(date time.Time) time.Time {
	return date.Add(time.Duration(g.fake.IntBetween(8*60, 22*60)) * time.Minute)
}

func (g *generator) region() int32 {
	return int32(g.fake.IntBetween(1, g.regions)) //nolint:gosec // regions из флага
}

func span(from, to int) string {
	return fmt.Sprintf("%02d:00-%02d:00", from, to)
}

// planAssignments раскладывает заказы по курьерам по кругу: заказ достается следующему курьеру,
// который обслуживает его регион. У курьера заказы собираются в группы не больше maxGroup.
// Заказ без подходящего курьера пропускается.
func planAssignments(
	date time.Time,
	couriers []entities.Courier,
	orders []entities.Order,
	maxGroup int,
) []entities.AssignmentCreate {
	maxGroup = max(maxGroup, 1)
	groups := make([][][]int64, len(couriers))

	cursor := 0
	for _, order := range orders {
		for step := range couriers {
			idx := (cursor + step) % len(couriers)
			if !slices.Contains(couriers[idx].Regions, order.Region) {
				continue
			}

			last := len(groups[idx]) - 1
			if last < 0 || len(groups[idx][last]) >= maxGroup {
				groups[idx] = append(groups[idx], nil)
				last++
			}
			groups[idx][last] = append(groups[idx][last], order.ID)

			cursor = idx + 1
			break
		}
	}

	plan := make([]entities.AssignmentCreate, 0, len(couriers))
	for idx := range couriers {
		if len(groups[idx]) == 0 {
			continue
		}
		plan = append(plan, entities.AssignmentCreate{
			Date:      date,
			CourierID: couriers[idx].ID,
			Groups:    groups[idx],
		})
	}
	return plan
}
