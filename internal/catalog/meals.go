package catalog

import (
	"time"

	"fitplan/internal/domain"
)

// intensityMenu rota platos por día del calendario para que el menú varíe
// sin duplicar el catálogo entero siete veces.
type intensityMenu struct {
	breakfasts []domain.MealTemplate
	lunches    []domain.MealTemplate
	snacks     []domain.MealTemplate
	dinners    []domain.MealTemplate
}

func meal(name string, t domain.MealType, cal int, protein, carbs, fat, fiber float64) domain.MealTemplate {
	return domain.MealTemplate{
		Name:     name,
		Type:     t,
		Calories: cal,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		FiberG:   fiber,
	}
}

var menus = map[domain.MealIntensity]intensityMenu{
	domain.MealIntensityLight: {
		breakfasts: []domain.MealTemplate{
			meal("Greek Yogurt with Berries", domain.MealBreakfast, 220, 18, 26, 5, 4),
			meal("Veggie Egg White Omelette", domain.MealBreakfast, 240, 22, 10, 11, 3),
			meal("Overnight Oats with Chia", domain.MealBreakfast, 280, 12, 42, 8, 7),
		},
		lunches: []domain.MealTemplate{
			meal("Grilled Chicken Salad", domain.MealLunch, 380, 35, 18, 17, 6),
			meal("Lentil Vegetable Soup", domain.MealLunch, 340, 19, 48, 8, 11),
			meal("Tuna Wrap with Greens", domain.MealLunch, 360, 30, 34, 11, 5),
		},
		snacks: []domain.MealTemplate{
			meal("Apple with Almond Butter", domain.MealSnack, 180, 5, 22, 9, 5),
			meal("Carrot Sticks with Hummus", domain.MealSnack, 150, 5, 18, 7, 6),
			meal("Cottage Cheese Bowl", domain.MealSnack, 160, 17, 9, 6, 0),
		},
		dinners: []domain.MealTemplate{
			meal("Baked Cod with Asparagus", domain.MealDinner, 400, 38, 16, 18, 5),
			meal("Turkey Stir-fry", domain.MealDinner, 420, 36, 30, 16, 6),
			meal("Zucchini Noodles with Shrimp", domain.MealDinner, 370, 32, 20, 16, 4),
		},
	},
	domain.MealIntensityStandard: {
		breakfasts: []domain.MealTemplate{
			meal("Oatmeal with Banana and Honey", domain.MealBreakfast, 380, 12, 68, 8, 8),
			meal("Scrambled Eggs on Toast", domain.MealBreakfast, 420, 24, 36, 19, 4),
			meal("Smoothie Bowl with Granola", domain.MealBreakfast, 410, 16, 62, 12, 9),
		},
		lunches: []domain.MealTemplate{
			meal("Chicken Rice Bowl", domain.MealLunch, 560, 42, 58, 15, 5),
			meal("Beef Burrito Bowl", domain.MealLunch, 610, 38, 55, 24, 10),
			meal("Salmon Quinoa Salad", domain.MealLunch, 540, 36, 44, 22, 7),
		},
		snacks: []domain.MealTemplate{
			meal("Trail Mix", domain.MealSnack, 250, 8, 20, 16, 4),
			meal("Protein Bar", domain.MealSnack, 220, 20, 22, 8, 3),
			meal("Banana with Peanut Butter", domain.MealSnack, 270, 8, 34, 12, 4),
		},
		dinners: []domain.MealTemplate{
			meal("Grilled Steak with Sweet Potato", domain.MealDinner, 620, 45, 42, 27, 6),
			meal("Chicken Pasta Primavera", domain.MealDinner, 580, 40, 62, 17, 7),
			meal("Pork Tenderloin with Rice", domain.MealDinner, 590, 44, 50, 20, 4),
		},
	},
	domain.MealIntensityHighEnergy: {
		breakfasts: []domain.MealTemplate{
			meal("Protein Pancakes with Maple Syrup", domain.MealBreakfast, 540, 34, 68, 14, 5),
			meal("Triple Egg Breakfast Burrito", domain.MealBreakfast, 580, 32, 48, 27, 6),
			meal("Muesli with Whole Milk and Nuts", domain.MealBreakfast, 520, 20, 64, 20, 9),
		},
		lunches: []domain.MealTemplate{
			meal("Double Chicken Power Bowl", domain.MealLunch, 720, 58, 64, 22, 8),
			meal("Beef and Bean Chili with Rice", domain.MealLunch, 760, 48, 72, 26, 14),
			meal("Tuna Pasta Salad", domain.MealLunch, 680, 46, 66, 22, 6),
		},
		snacks: []domain.MealTemplate{
			meal("Mass Gainer Shake", domain.MealSnack, 420, 32, 48, 10, 2),
			meal("Rice Cakes with Peanut Butter", domain.MealSnack, 340, 12, 38, 16, 4),
			meal("Greek Yogurt with Granola and Honey", domain.MealSnack, 360, 22, 46, 9, 4),
		},
		dinners: []domain.MealTemplate{
			meal("Ribeye with Mashed Potatoes", domain.MealDinner, 820, 52, 52, 42, 5),
			meal("Salmon with Rice and Avocado", domain.MealDinner, 760, 46, 58, 34, 8),
			meal("Chicken Thighs with Couscous", domain.MealDinner, 740, 50, 60, 28, 6),
		},
	},
}

// MealPlanFor arma el menú del día rotando los platos de la intensidad.
func (c *StaticCatalog) MealPlanFor(day time.Weekday, intensity domain.MealIntensity) (domain.MealPlanTemplate, bool) {
	menu, ok := menus[intensity]
	if !ok {
		return domain.MealPlanTemplate{}, false
	}
	i := int(day)
	return domain.MealPlanTemplate{
		Day:       day,
		Intensity: intensity,
		Meals: []domain.MealTemplate{
			menu.breakfasts[i%len(menu.breakfasts)],
			menu.lunches[i%len(menu.lunches)],
			menu.snacks[i%len(menu.snacks)],
			menu.dinners[i%len(menu.dinners)],
		},
	}, true
}

// mealTimes fija la hora por defecto de cada comida según el patrón de ayuno.
// Todas las horas caen dentro de la ventana canónica del patrón.
var mealTimes = map[domain.FastingPattern]map[domain.MealType]string{
	domain.Fasting1212: {
		domain.MealBreakfast: "08:30",
		domain.MealLunch:     "12:30",
		domain.MealSnack:     "16:00",
		domain.MealDinner:    "19:00",
	},
	domain.Fasting1311: {
		domain.MealBreakfast: "09:30",
		domain.MealLunch:     "13:00",
		domain.MealSnack:     "16:00",
		domain.MealDinner:    "19:00",
	},
	domain.Fasting1410: {
		domain.MealBreakfast: "10:30",
		domain.MealLunch:     "13:30",
		domain.MealSnack:     "16:30",
		domain.MealDinner:    "19:00",
	},
	domain.Fasting168: {
		domain.MealBreakfast: "12:00",
		domain.MealLunch:     "14:30",
		domain.MealSnack:     "17:00",
		domain.MealDinner:    "19:30",
	},
	domain.Fasting186: {
		domain.MealBreakfast: "14:00",
		domain.MealLunch:     "15:30",
		domain.MealSnack:     "17:00",
		domain.MealDinner:    "19:30",
	},
}

// MealTimeFor devuelve la hora por defecto para (patrón, comida).
func (c *StaticCatalog) MealTimeFor(pattern domain.FastingPattern, meal domain.MealType) (string, bool) {
	times, ok := mealTimes[pattern]
	if !ok {
		return "", false
	}
	t, ok := times[meal]
	return t, ok
}
