package datagen

var (
	fillings = []string{"Strawberry", "Chocolate", "Blueberry", "Raspberry", "Vanilla"}

	productTypes = []string{
		"Cake", "Pastry", "Tart", "Muffin", "Biscuit", "Bread", "Bagel",
		"Bun", "Brownie", "Cookie", "Cracker", "Cheese Cake",
	}

	firstNames = []string{
		"Ori", "Amanda", "Octavia", "Laurel", "Lael", "Delilah", "Jason",
		"Skyler", "Arsenio", "Haley", "Lionel", "Sylvia", "Jessica", "Lester",
		"Ferdinand", "Elaine", "Griffin", "Kerry", "Dominique",
	}

	// "Macias" appears twice, which makes it twice as likely.
	lastNames = []string{
		"Carter", "Castro", "Rich", "Irwin", "Moore", "Hendricks", "Huber",
		"Patton", "Wilkinson", "Thornton", "Nunez", "Macias", "Gallegos",
		"Blevins", "Mejia", "Pickett", "Whitney", "Farmer", "Henry", "Chen",
		"Macias", "Rowland", "Pierce", "Cortez", "Noble", "Howard", "Nixon",
		"Mcbride", "Leblanc", "Russell", "Carver", "Benton", "Maldonado", "Lyons",
	}
)

func pick[T any](rng Random, pool []T) T {
	return pool[rng.IntN(len(pool))]
}
