package utils

// IsPrime - Returns true if n is a prime number.
// Divisors are tried from 2 up to and including n/2, the same bound NextPrime uses.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	for i := 2; i <= n/2; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime that is equal to or bigger than n, or 2 if n is less than or equal to 1.
// The search is a plain trial division up to n/2 which makes the sequence of bucket counts a table goes through
// fully deterministic.
func NextPrime(n int) int {
	if n <= 1 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}
